package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/islandgo-api/internal/dto"
	"github.com/noah-isme/islandgo-api/internal/service"
	"github.com/noah-isme/islandgo-api/internal/utils"
)

// MetricsHandler exposes engagement, social media and competitor data.
type MetricsHandler struct {
	service service.MetricsService
	logger  zerolog.Logger
}

// NewMetricsHandler constructs the handler.
func NewMetricsHandler(service service.MetricsService, logger zerolog.Logger) *MetricsHandler {
	return &MetricsHandler{
		service: service,
		logger:  logger.With().Str("component", "metrics_handler").Logger(),
	}
}

// Register attaches engagement, social media and competitor routes.
func (h *MetricsHandler) Register(router fiber.Router) {
	router.Get("/engagement", h.listEngagement)
	router.Post("/engagement", h.createEngagement)
	router.Get("/social-media", h.listSocialMedia)
	router.Post("/social-media", h.createSocialMedia)
	router.Get("/competitors", h.listCompetitors)
	router.Post("/competitors", h.createCompetitor)
}

func metricListRequest(c *fiber.Ctx) dto.MetricListRequest {
	return dto.MetricListRequest{
		ListRequest: listRequest(c),
		Platform:    c.Query("platform"),
		StartDate:   c.Query("startDate"),
		EndDate:     c.Query("endDate"),
	}
}

func (h *MetricsHandler) listEngagement(c *fiber.Ctx) error {
	metrics, err := h.service.ListEngagement(c.UserContext(), metricListRequest(c))
	if err != nil {
		return sendQueryError(c, h.logger, err)
	}
	return utils.SendJSON(c, fiber.StatusOK, metrics)
}

func (h *MetricsHandler) createEngagement(c *fiber.Ctx) error {
	var payload dto.EngagementRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, invalidPayloadMessage)
	}
	id, err := h.service.CreateEngagement(c.UserContext(), payload)
	return sendCreateResult(c, h.logger, "engagement metric", id, err, false)
}

func (h *MetricsHandler) listSocialMedia(c *fiber.Ctx) error {
	posts, err := h.service.ListSocialMedia(c.UserContext(), metricListRequest(c))
	if err != nil {
		return sendQueryError(c, h.logger, err)
	}
	return utils.SendJSON(c, fiber.StatusOK, posts)
}

func (h *MetricsHandler) createSocialMedia(c *fiber.Ctx) error {
	var payload dto.SocialMediaRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, invalidPayloadMessage)
	}
	id, err := h.service.CreateSocialMedia(c.UserContext(), payload)
	return sendCreateResult(c, h.logger, "social media post", id, err, false)
}

func (h *MetricsHandler) listCompetitors(c *fiber.Ctx) error {
	competitors := h.service.ListCompetitors(c.UserContext(), dto.CompetitorListRequest{
		ListRequest:    listRequest(c),
		CompetitorName: c.Query("competitorName"),
		Metric:         c.Query("metric"),
	})
	return utils.SendJSON(c, fiber.StatusOK, competitors)
}

func (h *MetricsHandler) createCompetitor(c *fiber.Ctx) error {
	var payload dto.CompetitorRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, invalidPayloadMessage)
	}
	id, err := h.service.CreateCompetitor(c.UserContext(), payload)
	return sendCreateResult(c, h.logger, "competitor metric", id, err, false)
}
