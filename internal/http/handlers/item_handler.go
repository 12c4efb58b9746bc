package handlers

import (
	"github.com/gofiber/fiber/v2"

	"circular/internal/domain"
	applog "circular/internal/log"
	"circular/internal/services"
	"circular/internal/validate"
)

type ItemHandler struct {
	Inv *services.InventoryService
}

type intakeItemReq struct {
	Name     string  `json:"name"`
	Size     string  `json:"size"`
	Category string  `json:"category"`
	Gender   string  `json:"gender"`
	Price    float64 `json:"price"`
}

// POST /api/v1/items
func (h *ItemHandler) Intake(c *fiber.Ctx) error {
	var req intakeItemReq
	if err := c.BodyParser(&req); err != nil {
		return badInput(c, "body")
	}
	name, ok := validate.Name(req.Name)
	if !ok {
		return badInput(c, "name")
	}
	size, ok := validate.Size(req.Size)
	if !ok {
		return badInput(c, "size")
	}
	category, ok := validate.Category(req.Category)
	if !ok {
		return badInput(c, "category")
	}
	gender, ok := validate.ItemGender(req.Gender)
	if !ok {
		return badInput(c, "gender")
	}
	if !validate.Price(req.Price) {
		return badInput(c, "price")
	}

	it, err := h.Inv.Intake(name, size, category, gender, req.Price)
	if err != nil {
		return fail(c, "item.intake.fail", err)
	}
	applog.Audit(c, "item.intake", map[string]any{"item_id": it.ID})
	return c.Status(fiber.StatusCreated).JSON(it)
}

// GET /api/v1/items?status=available
func (h *ItemHandler) List(c *fiber.Ctx) error {
	var (
		out []domain.Item
		err error
	)
	switch c.Query("status") {
	case "":
		out, err = h.Inv.List()
	case domain.StatusAvailable:
		out, err = h.Inv.ListAvailable()
	default:
		return badInput(c, "status")
	}
	if err != nil {
		return fail(c, "item.list.fail", err)
	}
	return c.JSON(out)
}
