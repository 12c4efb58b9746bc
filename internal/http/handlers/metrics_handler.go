package handlers

import (
	"github.com/gofiber/fiber/v2"

	"circular/internal/services"
)

type MetricsHandler struct {
	Metrics *services.MetricsService
}

// GET /api/v1/metrics
func (h *MetricsHandler) Dashboard(c *fiber.Ctx) error {
	m, err := h.Metrics.Compute()
	if err != nil {
		return fail(c, "metrics.compute.fail", err)
	}
	return c.JSON(m)
}

// GET /api/v1/reports/stale-stock
func (h *MetricsHandler) StaleStock(c *fiber.Ctx) error {
	out, err := h.Metrics.StaleStock()
	if err != nil {
		return fail(c, "metrics.stale.fail", err)
	}
	return c.JSON(out)
}

// GET /api/v1/reports/reengagement
func (h *MetricsHandler) Reengagement(c *fiber.Ctx) error {
	out, err := h.Metrics.ReengagementCandidates()
	if err != nil {
		return fail(c, "metrics.reengagement.fail", err)
	}
	return c.JSON(out)
}
