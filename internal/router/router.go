package router

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/silvastudio/intake-go-api/internal/config"
	"github.com/silvastudio/intake-go-api/internal/handler"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	ContactHandler *handler.ContactHandler
	BookingHandler *handler.BookingHandler
	AdminHandler   *handler.AdminHandler
	// IntakeRateLimit throttles the public submission endpoints; nil
	// disables throttling.
	IntakeRateLimit fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	rateLimit := deps.IntakeRateLimit
	if rateLimit == nil {
		rateLimit = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.ContactHandler != nil {
		deps.ContactHandler.Register(api.Group("/contact", rateLimit))
	}

	if deps.BookingHandler != nil {
		deps.BookingHandler.Register(api.Group("/bjj-booking", rateLimit))
	}

	if deps.AdminHandler != nil {
		deps.AdminHandler.Register(api.Group("/admin"))
	}

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
