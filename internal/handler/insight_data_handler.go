package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/islandgo-api/internal/dto"
	"github.com/noah-isme/islandgo-api/internal/service"
	"github.com/noah-isme/islandgo-api/internal/utils"
)

// InsightDataHandler serves stored creators, gaps and viral content.
type InsightDataHandler struct {
	service service.InsightDataService
	logger  zerolog.Logger
}

// NewInsightDataHandler constructs the handler.
func NewInsightDataHandler(service service.InsightDataService, logger zerolog.Logger) *InsightDataHandler {
	return &InsightDataHandler{
		service: service,
		logger:  logger.With().Str("component", "insight_data_handler").Logger(),
	}
}

// Register attaches the /data routes.
func (h *InsightDataHandler) Register(router fiber.Router) {
	router.Get("/creators", h.creators)
	router.Get("/gaps", h.gaps)
	router.Patch("/gaps/campaign", h.gapCampaign)
	router.Get("/viral", h.viral)
}

func (h *InsightDataHandler) creators(c *fiber.Ctx) error {
	response := h.service.ListCreators(c.UserContext(), dto.CreatorListRequest{
		ListRequest: listRequest(c),
		City:        c.Query("city"),
	})
	return utils.SendPaginated(c, response.Data, response.Pagination)
}

func (h *InsightDataHandler) gaps(c *fiber.Ctx) error {
	response := h.service.ListGaps(c.UserContext(), dto.GapListRequest{
		ListRequest: listRequest(c),
		Priority:    c.Query("priority"),
	})
	return utils.SendPaginated(c, response.Data, response.Pagination)
}

func (h *InsightDataHandler) viral(c *fiber.Ctx) error {
	response := h.service.ListViralContent(c.UserContext(), listRequest(c))
	return utils.SendPaginated(c, response.Data, response.Pagination)
}

func (h *InsightDataHandler) gapCampaign(c *fiber.Ctx) error {
	var payload dto.GapCampaignRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, invalidPayloadMessage)
	}

	updated, err := h.service.SetGapCampaign(c.UserContext(), payload)
	if err != nil {
		if handled, sendErr := sendInputError(c, err); handled {
			return sendErr
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to update gap campaign flag")
		return utils.SendErrorWithMessage(c, fiber.StatusInternalServerError, "Failed to update campaign status", err.Error())
	}

	return utils.SendJSON(c, fiber.StatusOK, dto.SuccessResponse{Success: true, Updated: updated})
}
