package handler

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/islandgo-api/internal/dto"
	"github.com/noah-isme/islandgo-api/internal/service"
	"github.com/noah-isme/islandgo-api/internal/utils"
)

// AnalyticsHandler exposes the dashboard summary and report downloads.
type AnalyticsHandler struct {
	analytics service.AnalyticsService
	reports   service.ReportService
	logger    zerolog.Logger
	now       func() time.Time
}

// NewAnalyticsHandler constructs the handler.
func NewAnalyticsHandler(analytics service.AnalyticsService, reports service.ReportService, logger zerolog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analytics: analytics,
		reports:   reports,
		logger:    logger.With().Str("component", "analytics_handler").Logger(),
		now:       time.Now,
	}
}

// Register attaches analytics and report routes.
func (h *AnalyticsHandler) Register(router fiber.Router) {
	router.Get("/analytics", h.dashboard)
	router.Post("/reports/generate", h.generateReport)
}

func (h *AnalyticsHandler) dashboard(c *fiber.Ctx) error {
	summary, err := h.analytics.Dashboard(c.UserContext(), strings.TrimSpace(c.Query("startDate")), strings.TrimSpace(c.Query("endDate")))
	if err != nil {
		if handled, sendErr := sendInputError(c, err); handled {
			return sendErr
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to fetch analytics")
		return utils.SendErrorWithMessage(c, fiber.StatusInternalServerError, "Failed to fetch analytics", err.Error())
	}

	if summary.CacheHit {
		c.Set("X-Cache-Hit", "true")
	} else {
		c.Set("X-Cache-Hit", "false")
	}
	return utils.SendJSON(c, fiber.StatusOK, summary)
}

func (h *AnalyticsHandler) generateReport(c *fiber.Ctx) error {
	var payload dto.ReportRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, invalidPayloadMessage)
	}

	report, err := h.reports.Generate(c.UserContext(), payload)
	if err != nil {
		if handled, sendErr := sendInputError(c, err); handled {
			return sendErr
		}
		requestLogger(h.logger, c).Error().Err(err).Str("type", payload.Type).Msg("failed to generate report")
		return utils.SendError(c, fiber.StatusInternalServerError, "Failed to generate report")
	}

	filename := fmt.Sprintf("report-%s.json", h.now().UTC().Format(time.RFC3339))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return utils.SendJSON(c, fiber.StatusOK, report)
}
