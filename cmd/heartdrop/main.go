package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"heartdrop/internal/clock"
	"heartdrop/internal/config"
	"heartdrop/internal/http/handlers"
	applog "heartdrop/internal/log"
	"heartdrop/internal/repos"
	"heartdrop/internal/services"
	"heartdrop/internal/ws"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Auth wiring
	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}
	authH := &handlers.AuthHandler{Auth: authSvc}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "something went wrong, please try again",
			})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/ws/gesture"
		},
	}))

	// ---------- App wiring ----------
	hub := ws.NewHub(nil, cfg.LikesPersistence == "memory")
	deps, err := handlers.NewDeps(db, *cfg, hub)
	if err != nil {
		log.Fatal(err)
	}
	hub.Sessions = deps.Sessions
	go hub.Run()

	clk := clock.New()

	// ---------- Routes ----------
	api := app.Group("/api/v1")
	api.Get("/products", deps.ProductHandler.List)
	api.Get("/products/:id", deps.ProductHandler.Detail)
	api.Post("/products/:id/like", deps.ProductHandler.ToggleLike)
	api.Get("/layout", deps.LayoutHandler.Resolve)
	api.Get("/grid", deps.LayoutHandler.Grid)
	api.Get("/announcement", deps.AnnouncementHandler.Get)

	// Auth (login throttled)
	api.Post("/auth/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many attempts, try again later"})
		},
	}), authH.Login)
	api.Post("/auth/logout", authH.Logout)
	api.Get("/auth/me", authH.Me)

	// Admin
	admin := api.Group("/admin", handlers.RequireAdmin(authSvc))
	admin.Post("/products", deps.AdminHandler.CreateProduct)
	admin.Put("/products/:id", deps.AdminHandler.UpdateProduct)
	admin.Delete("/products/:id", deps.AdminHandler.DeleteProduct)
	admin.Put("/announcement", deps.AdminHandler.SetAnnouncement)

	// ---------- Websocket ----------
	app.Use("/ws/gesture", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		sid := c.Cookies("sid")
		if sid == "" {
			sid = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     "sid",
				Value:    sid,
				Path:     "/",
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		c.Locals("sid", sid)
		return c.Next()
	})
	app.Get("/ws/gesture", websocket.New(func(conn *websocket.Conn) {
		sid, _ := conn.Locals("sid").(string)
		client := ws.NewClient(hub, conn, sid, deps.Sessions.Session(sid), cfg.Engine, clk)
		hub.Register <- client
		go client.WritePump()
		client.ReadPump()
	}))

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).JSON(fiber.Map{"error": "not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
