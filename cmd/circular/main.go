package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"circular/internal/config"
	"circular/internal/http/handlers"
	applog "circular/internal/log"
	"circular/internal/repos"
	"circular/internal/services"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	if err := repos.SeedCredential(db, cfg.AdminUser, cfg.AdminPass); err != nil {
		log.Fatal(err)
	}

	// Auth wiring
	credRepo := repos.NewCredentialRepo(db)
	authSvc := &services.AuthService{Creds: credRepo}
	authH := &handlers.AuthHandler{Auth: authSvc}
	adminH := &handlers.AdminHandler{Auth: authSvc}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Log and answer with a friendly message; never leak internals
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "something went wrong, please try again",
			})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/healthz"
		},
	}))

	// ---------- Auth routes (login throttled) ----------
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many attempts, try again later"})
		},
	}), authH.Login)
	app.Post("/logout", authH.Logout)

	// ---------- App routes ----------
	deps := handlers.NewDeps(db, cfg)

	api := app.Group("/api/v1", handlers.RequireSession(authSvc))
	api.Get("/customers", deps.CustomerHandler.List)
	api.Post("/customers", deps.CustomerHandler.Register)
	api.Get("/customers/:id/matches", deps.MatchHandler.Candidates)
	api.Get("/items", deps.ItemHandler.List)
	api.Post("/items", deps.ItemHandler.Intake)
	api.Get("/sales", deps.SaleHandler.List)
	api.Post("/sales", deps.SaleHandler.Record)
	api.Get("/metrics", deps.MetricsHandler.Dashboard)
	api.Get("/reports/stale-stock", deps.MetricsHandler.StaleStock)
	api.Get("/reports/reengagement", deps.MetricsHandler.Reengagement)

	admin := app.Group("/admin", handlers.RequireSession(authSvc))
	admin.Post("/credential", adminH.RotateCredential)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
