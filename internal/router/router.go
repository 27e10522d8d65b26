package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/islandgo-api/internal/config"
	"github.com/noah-isme/islandgo-api/internal/handler"
	"github.com/noah-isme/islandgo-api/internal/middleware"
	"github.com/noah-isme/islandgo-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	InsightDataHandler     *handler.InsightDataHandler
	ExportHandler          *handler.ExportHandler
	CampaignHandler        *handler.CampaignHandler
	MetricsHandler         *handler.MetricsHandler
	AlertHandler           *handler.AlertHandler
	ContentCalendarHandler *handler.ContentCalendarHandler
	AnalyticsHandler       *handler.AnalyticsHandler
	AIHandler              *handler.AIHandler
	ActivityHandler        *handler.ActivityHandler
	DatabaseHandler        *handler.DatabaseHandler
	AIEnabled              bool
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg, deps.AIEnabled))

	data := api.Group("/data")
	if deps.InsightDataHandler != nil {
		deps.InsightDataHandler.Register(data)
	}
	if deps.ExportHandler != nil {
		deps.ExportHandler.Register(data)
	}
	if deps.CampaignHandler != nil {
		deps.CampaignHandler.Register(api)
	}
	if deps.MetricsHandler != nil {
		deps.MetricsHandler.Register(api)
	}
	if deps.AlertHandler != nil {
		deps.AlertHandler.Register(api)
	}
	if deps.ContentCalendarHandler != nil {
		deps.ContentCalendarHandler.Register(api)
	}
	if deps.AnalyticsHandler != nil {
		deps.AnalyticsHandler.Register(api)
	}
	if deps.AIHandler != nil {
		deps.AIHandler.Register(api, middleware.RateLimit("ai", cfg.AIRateLimit, cfg.AIRateLimitEvery))
	}
	if deps.ActivityHandler != nil {
		deps.ActivityHandler.Register(api)
	}
	if deps.DatabaseHandler != nil {
		deps.DatabaseHandler.Register(api)
	}
}
