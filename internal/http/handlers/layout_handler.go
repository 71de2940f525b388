package handlers

import (
	"heartdrop/internal/domain"
	"heartdrop/internal/layout"
	applog "heartdrop/internal/log"
	"heartdrop/internal/store"

	"github.com/gofiber/fiber/v2"
)

type LayoutHandler struct{}

func viewportFromQuery(c *fiber.Ctx) (domain.Viewport, bool) {
	w := c.QueryInt("w", -1)
	h := c.QueryInt("h", -1)
	if w <= 0 || h <= 0 {
		return domain.Viewport{}, false
	}
	return domain.Viewport{Width: w, Height: h, Touch: c.QueryBool("touch", false)}, true
}

// Resolve reports the device class and layout profile for a viewport.
func (h *LayoutHandler) Resolve(c *fiber.Ctx) error {
	vp, ok := viewportFromQuery(c)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "viewport"})
		return c.Status(400).JSON(fiber.Map{"error": "w and h are required"})
	}
	cfg, err := layout.Resolve(vp)
	if err != nil {
		applog.Error(c, "layout.resolve.fail", err, map[string]any{"w": vp.Width, "h": vp.Height})
		return c.Status(500).JSON(fiber.Map{"error": "could not resolve layout"})
	}
	return c.JSON(fiber.Map{
		"device": layout.Detect(vp),
		"config": cfg,
	})
}

// Grid returns the full set of computed styles for the product grid, plus the
// virtualized window of visible cards when count and scroll metrics are given.
func (h *LayoutHandler) Grid(c *fiber.Ctx) error {
	vp, ok := viewportFromQuery(c)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "viewport"})
		return c.Status(400).JSON(fiber.Map{"error": "w and h are required"})
	}
	cfg, err := layout.Resolve(vp)
	if err != nil {
		applog.Error(c, "layout.grid.fail", err, map[string]any{"w": vp.Width, "h": vp.Height})
		return c.Status(500).JSON(fiber.Map{"error": "could not resolve layout"})
	}
	searchActive := c.Query("q") != ""

	out := fiber.Map{
		"device":         layout.Detect(vp),
		"config":         cfg,
		"grid":           layout.Grid(cfg, searchActive, vp.Touch),
		"card":           layout.Card(cfg),
		"container":      layout.Container(cfg),
		"totalDonations": store.TotalDonations,
	}

	count := c.QueryInt("count", 0)
	if count > 0 {
		out["window"] = layout.VisibleWindow(count,
			c.QueryFloat("containerW", float64(vp.Width)),
			c.QueryFloat("containerH", float64(vp.Height)),
			c.QueryFloat("scrollTop", 0),
			c.QueryFloat("cardW", 200),
			c.QueryFloat("cardH", 250),
			c.QueryFloat("gap", 16),
		)
	}
	return c.JSON(out)
}
