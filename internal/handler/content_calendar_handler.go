package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/islandgo-api/internal/dto"
	"github.com/noah-isme/islandgo-api/internal/service"
	"github.com/noah-isme/islandgo-api/internal/utils"
)

// ContentCalendarHandler exposes scheduled content.
type ContentCalendarHandler struct {
	service service.ContentCalendarService
	logger  zerolog.Logger
}

// NewContentCalendarHandler constructs the handler.
func NewContentCalendarHandler(service service.ContentCalendarService, logger zerolog.Logger) *ContentCalendarHandler {
	return &ContentCalendarHandler{
		service: service,
		logger:  logger.With().Str("component", "content_calendar_handler").Logger(),
	}
}

// Register attaches content calendar routes.
func (h *ContentCalendarHandler) Register(router fiber.Router) {
	router.Get("/content-calendar", h.list)
	router.Post("/content-calendar", h.create)
}

func (h *ContentCalendarHandler) list(c *fiber.Ctx) error {
	items, err := h.service.List(c.UserContext(), dto.ContentCalendarListRequest{
		ListRequest: listRequest(c),
		Status:      c.Query("status"),
		StartDate:   c.Query("startDate"),
		EndDate:     c.Query("endDate"),
	})
	if err != nil {
		return sendQueryError(c, h.logger, err)
	}
	return utils.SendJSON(c, fiber.StatusOK, items)
}

func (h *ContentCalendarHandler) create(c *fiber.Ctx) error {
	var payload dto.ContentCalendarRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, invalidPayloadMessage)
	}
	id, err := h.service.Create(c.UserContext(), payload)
	return sendCreateResult(c, h.logger, "content", id, err, false)
}
