// Package server assembles the HTTP application.
package server

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"vybe/internal/handlers"
	"vybe/internal/metrics"
	"vybe/internal/services"
)

// Services are the application services the API exposes.
type Services struct {
	Auth     *services.AuthService
	Products *services.ProductService
	Outfits  *services.OutfitService
	Accounts *services.AccountService
}

// Options tune the HTTP application.
type Options struct {
	// RequestLog enables the per-request access log.
	RequestLog bool
}

// NewApp builds the fiber app with every route mounted under /api/v1.
func NewApp(svc Services, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "vybe",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	if opts.RequestLog {
		app.Use(logger.New())
	}
	app.Use(metrics.Middleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	apiV1 := app.Group("/api/v1")
	handlers.NewAuthHandler(svc.Auth).RegisterRoutes(apiV1)
	handlers.NewProductHandler(svc.Products, svc.Auth).RegisterRoutes(apiV1)
	handlers.NewOutfitHandler(svc.Outfits, svc.Auth).RegisterRoutes(apiV1)
	handlers.NewUserHandler(svc.Accounts, svc.Auth).RegisterRoutes(apiV1)

	return app
}

// errorHandler renders errors that escape handlers, including fiber's own
// 404 and 405 responses, as {error}.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}
	slog.Error("unhandled request error",
		slog.String("method", c.Method()),
		slog.String("path", c.Path()),
		slog.String("error", err.Error()),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
}
