package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "circular/internal/log"
	"circular/internal/services"
	"circular/internal/validate"
)

type SaleHandler struct {
	Sales *services.SaleService
}

type recordSaleReq struct {
	CustomerID string  `json:"customer_id"`
	ItemID     string  `json:"item_id"`
	FinalPrice float64 `json:"final_price"`
}

// POST /api/v1/sales
func (h *SaleHandler) Record(c *fiber.Ctx) error {
	var req recordSaleReq
	if err := c.BodyParser(&req); err != nil {
		return badInput(c, "body")
	}
	customerID, ok := validate.ID(req.CustomerID)
	if !ok {
		return badInput(c, "customer_id")
	}
	itemID, ok := validate.ID(req.ItemID)
	if !ok {
		return badInput(c, "item_id")
	}
	if !validate.Price(req.FinalPrice) {
		return badInput(c, "final_price")
	}

	sale, err := h.Sales.Record(customerID, itemID, req.FinalPrice)
	if err != nil {
		return fail(c, "sale.record.fail", err)
	}
	applog.Audit(c, "sale.record", map[string]any{
		"sale_id": sale.ID, "item_id": itemID, "final_price": req.FinalPrice,
	})
	return c.Status(fiber.StatusCreated).JSON(sale)
}

// GET /api/v1/sales
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.Sales.List()
	if err != nil {
		return fail(c, "sale.list.fail", err)
	}
	return c.JSON(out)
}
