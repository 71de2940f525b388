package handlers

import (
	"time"

	"heartdrop/internal/log"
	"heartdrop/internal/services"
	"heartdrop/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth *services.AuthService
}

// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}
	email, ok := validate.Email(in.Email)
	if !ok || !validate.Password(in.Password) {
		log.Security(c, "auth.login.fail", map[string]any{"email": in.Email, "reason": "bad_format"})
		return c.Status(401).JSON(fiber.Map{"error": "invalid email or password"})
	}

	u, err := h.Auth.Login(sid, email, in.Password)
	if err != nil {
		log.Security(c, "auth.login.fail", map[string]any{"email": email})
		return c.Status(401).JSON(fiber.Map{"error": "invalid email or password"})
	}

	log.Audit(c, "auth.login.success", map[string]any{"email": email})
	return c.JSON(fiber.Map{"email": u.Email, "name": u.Name, "role": u.Role})
}

// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.Logout(sid)
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	log.Audit(c, "auth.logout", map[string]any{"sid": sid})
	return c.SendStatus(204)
}

// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	sid := c.Cookies("sid")
	if sid == "" {
		return c.Status(401).JSON(fiber.Map{"error": "not logged in"})
	}
	u, err := h.Auth.CurrentUser(sid)
	if err != nil || u == nil {
		return c.Status(401).JSON(fiber.Map{"error": "not logged in"})
	}
	return c.JSON(fiber.Map{"email": u.Email, "name": u.Name, "role": u.Role})
}
