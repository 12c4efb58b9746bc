package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "circular/internal/log"
	"circular/internal/services"
	"circular/internal/validate"
)

type CustomerHandler struct {
	Customers *services.CustomerService
}

type registerCustomerReq struct {
	Name               string `json:"name"`
	WhatsApp           string `json:"whatsapp"`
	GenderInterest     string `json:"gender_interest"`
	ClothingSize       string `json:"clothing_size"`
	ShoeSize           string `json:"shoe_size"`
	FavoriteCategories string `json:"favorite_categories"`
}

// POST /api/v1/customers
func (h *CustomerHandler) Register(c *fiber.Ctx) error {
	var req registerCustomerReq
	if err := c.BodyParser(&req); err != nil {
		return badInput(c, "body")
	}
	name, ok := validate.Name(req.Name)
	if !ok {
		return badInput(c, "name")
	}
	whatsapp, ok := validate.WhatsApp(req.WhatsApp)
	if !ok {
		return badInput(c, "whatsapp")
	}
	interest, ok := validate.Interest(req.GenderInterest)
	if !ok {
		return badInput(c, "gender_interest")
	}
	size, ok := validate.Size(req.ClothingSize)
	if !ok {
		return badInput(c, "clothing_size")
	}

	cust, err := h.Customers.Register(name, whatsapp, interest, size, req.ShoeSize, req.FavoriteCategories)
	if err != nil {
		return fail(c, "customer.register.fail", err)
	}
	applog.Audit(c, "customer.register", map[string]any{"customer_id": cust.ID})
	return c.Status(fiber.StatusCreated).JSON(cust)
}

// GET /api/v1/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	out, err := h.Customers.List()
	if err != nil {
		return fail(c, "customer.list.fail", err)
	}
	return c.JSON(out)
}
