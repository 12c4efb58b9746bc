package handlers

import (
	applog "circular/internal/log"
	"circular/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireSession guards routes behind the single-admin login.
func RequireSession(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" || !auth.SessionActive(sid) {
			applog.Security(c, "access.denied", map[string]any{"sid": sid})
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "login required"})
		}
		return c.Next()
	}
}
