package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "circular/internal/log"
	"circular/internal/services"
	"circular/internal/validate"
)

type AdminHandler struct {
	Auth *services.AuthService
}

type rotateReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /admin/credential — replace the stored login credential.
func (h *AdminHandler) RotateCredential(c *fiber.Ctx) error {
	var req rotateReq
	if err := c.BodyParser(&req); err != nil {
		return badInput(c, "body")
	}
	username, ok := validate.Username(req.Username)
	if !ok {
		return badInput(c, "username")
	}
	if !validate.Password(req.Password) {
		return badInput(c, "password")
	}
	if err := h.Auth.Rotate(username, req.Password); err != nil {
		return fail(c, "admin.credential.rotate.fail", err)
	}
	applog.Audit(c, "admin.credential.rotate", map[string]any{"username": username})
	return c.JSON(fiber.Map{"ok": true})
}
