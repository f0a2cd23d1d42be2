package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/school-fees/internal/config"
	"github.com/noah-isme/school-fees/internal/handler"
	"github.com/noah-isme/school-fees/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	StudentHandler *handler.StudentHandler
	TermHandler    *handler.TermHandler
	PaymentHandler *handler.PaymentHandler
	ReportHandler  *handler.ReportHandler
	Database       handler.Pinger
	FormRateLimit  fiber.Handler
}

// Register wires the HTML pages, the JSON API and the metrics endpoint.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg, deps.Database))

	if deps.FormRateLimit != nil {
		app.Use(deps.FormRateLimit)
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/students", fiber.StatusFound)
	})

	if deps.StudentHandler != nil {
		deps.StudentHandler.Register(app)
	}
	if deps.TermHandler != nil {
		deps.TermHandler.Register(app)
	}
	if deps.PaymentHandler != nil {
		deps.PaymentHandler.Register(app)
	}
	if deps.ReportHandler != nil {
		deps.ReportHandler.Register(app)
		deps.ReportHandler.RegisterAPI(api)
	}
}
