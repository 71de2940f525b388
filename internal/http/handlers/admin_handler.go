package handlers

import (
	"heartdrop/internal/domain"
	applog "heartdrop/internal/log"
	"heartdrop/internal/services"
	"heartdrop/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Catalog  *services.CatalogService
	Announce *services.AnnouncementService
}

func (h *AdminHandler) parseProduct(c *fiber.Ctx) (domain.ProductInput, bool) {
	var in domain.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return in, false
	}
	name, ok := validate.Name(in.Name)
	if !ok {
		return in, false
	}
	in.Name = name
	if !validate.Price(in.Price) {
		return in, false
	}
	if in.ImageURL == "" {
		return in, false
	}
	if in.Condition != "" {
		cond, ok := validate.Condition(in.Condition)
		if !ok {
			return in, false
		}
		in.Condition = cond
	}
	return in, true
}

// POST /api/v1/admin/products
func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	in, ok := h.parseProduct(c)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(400).JSON(fiber.Map{"error": "invalid product"})
	}
	p, err := h.Catalog.CreateProduct(in)
	if err != nil {
		applog.Error(c, "admin.product.create.fail", err, map[string]any{"name": in.Name})
		return c.Status(500).JSON(fiber.Map{"error": "could not create product"})
	}
	applog.Audit(c, "admin.product.create", map[string]any{"product": p.ID})
	return c.Status(201).JSON(p)
}

// PUT /api/v1/admin/products/:id
func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "invalid product id"})
	}
	in, ok := h.parseProduct(c)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(400).JSON(fiber.Map{"error": "invalid product"})
	}
	p, err := h.Catalog.UpdateProduct(id, in)
	if err != nil {
		applog.Error(c, "admin.product.update.fail", err, map[string]any{"product": id})
		return c.Status(404).JSON(fiber.Map{"error": "product not found"})
	}
	applog.Audit(c, "admin.product.update", map[string]any{"product": id})
	return c.JSON(p)
}

// DELETE /api/v1/admin/products/:id
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "invalid product id"})
	}
	if err := h.Catalog.DeleteProduct(id); err != nil {
		applog.Error(c, "admin.product.delete.fail", err, map[string]any{"product": id})
		return c.Status(404).JSON(fiber.Map{"error": "product not found"})
	}
	applog.Audit(c, "admin.product.delete", map[string]any{"product": id})
	return c.SendStatus(204)
}

// PUT /api/v1/admin/announcement
func (h *AdminHandler) SetAnnouncement(c *fiber.Ctx) error {
	var in struct {
		Message string `json:"message"`
		Visible bool   `json:"visible"`
	}
	if err := c.BodyParser(&in); err != nil || len(in.Message) > 200 {
		applog.Security(c, "validation.fail", map[string]any{"field": "announcement"})
		return c.Status(400).JSON(fiber.Map{"error": "invalid announcement"})
	}
	a, err := h.Announce.Set(in.Message, in.Visible)
	if err != nil {
		applog.Error(c, "admin.announcement.set.fail", err, nil)
		return c.Status(500).JSON(fiber.Map{"error": "could not save announcement"})
	}
	applog.Audit(c, "admin.announcement.set", map[string]any{"visible": in.Visible})
	return c.JSON(a)
}
