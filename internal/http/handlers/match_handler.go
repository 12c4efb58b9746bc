package handlers

import (
	"github.com/gofiber/fiber/v2"

	"circular/internal/services"
	"circular/internal/validate"
)

type MatchHandler struct {
	Match *services.MatchService
}

// GET /api/v1/customers/:id/matches
func (h *MatchHandler) Candidates(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badInput(c, "id")
	}
	out, err := h.Match.Candidates(id)
	if err != nil {
		return fail(c, "match.candidates.fail", err)
	}
	return c.JSON(out)
}
