package handlers

import (
	applog "heartdrop/internal/log"
	"heartdrop/internal/services"

	"github.com/gofiber/fiber/v2"
)

type AnnouncementHandler struct {
	Announce *services.AnnouncementService
}

func (h *AnnouncementHandler) Get(c *fiber.Ctx) error {
	a, err := h.Announce.Get()
	if err != nil {
		applog.Error(c, "announcement.get.fail", err, nil)
		return c.Status(500).JSON(fiber.Map{"error": "could not load announcement"})
	}
	return c.JSON(a)
}
