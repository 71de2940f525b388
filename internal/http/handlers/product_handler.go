package handlers

import (
	applog "heartdrop/internal/log"
	"heartdrop/internal/services"
	"heartdrop/internal/store"
	"heartdrop/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false,
		})
	}
	return sid
}

// List serves the catalog with the session's like overlay applied. An
// optional q narrows by case-insensitive substring over name and description.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	sid := ensureSID(c)
	q := c.Query("q")
	if q != "" {
		if v, ok := validate.Q(q); ok {
			q = v
		} else {
			applog.Security(c, "validation.fail", map[string]any{"field": "q"})
			return c.Status(400).JSON(fiber.Map{"error": "invalid query"})
		}
	}
	items := h.Catalog.ListForSession(sid, q)
	return c.JSON(fiber.Map{"products": items, "count": len(items)})
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(404).JSON(fiber.Map{"error": "product not found"})
	}
	p, err := h.Catalog.Sessions.Session(sid).Get(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "product not found"})
	}
	return c.JSON(p)
}

// ToggleLike flips the like state for one product in this session.
func (h *ProductHandler) ToggleLike(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(400).JSON(fiber.Map{"error": "invalid product id"})
	}
	liked, err := h.Catalog.ToggleLike(sid, id)
	if err != nil {
		if err == store.ErrUnknownProduct {
			return c.Status(404).JSON(fiber.Map{"error": "product not found"})
		}
		applog.Error(c, "like.toggle.fail", err, map[string]any{"product": id})
		return c.Status(500).JSON(fiber.Map{"error": "could not save like"})
	}
	applog.Audit(c, "like.toggle", map[string]any{"product": id, "liked": liked})
	p, err := h.Catalog.Sessions.Session(sid).Get(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "product not found"})
	}
	return c.JSON(fiber.Map{"liked": liked, "favorites": p.Favorites})
}
