package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/islandgo-api/internal/dto"
	"github.com/noah-isme/islandgo-api/internal/service"
	"github.com/noah-isme/islandgo-api/internal/utils"
)

// AlertHandler exposes alert routes.
type AlertHandler struct {
	service service.AlertService
	logger  zerolog.Logger
}

// NewAlertHandler constructs the handler.
func NewAlertHandler(service service.AlertService, logger zerolog.Logger) *AlertHandler {
	return &AlertHandler{
		service: service,
		logger:  logger.With().Str("component", "alert_handler").Logger(),
	}
}

// Register attaches alert routes.
func (h *AlertHandler) Register(router fiber.Router) {
	router.Get("/alerts", h.list)
	router.Post("/alerts", h.create)
	router.Patch("/alerts/:id", h.updateStatus)
}

func (h *AlertHandler) list(c *fiber.Ctx) error {
	alerts := h.service.List(c.UserContext(), dto.AlertListRequest{
		ListRequest: listRequest(c),
		Status:      c.Query("status"),
		Severity:    c.Query("severity"),
	})
	return utils.SendJSON(c, fiber.StatusOK, alerts)
}

func (h *AlertHandler) create(c *fiber.Ctx) error {
	var payload dto.AlertRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, invalidPayloadMessage)
	}
	id, err := h.service.Create(c.UserContext(), payload)
	return sendCreateResult(c, h.logger, "alert", id, err, false)
}

func (h *AlertHandler) updateStatus(c *fiber.Ctx) error {
	var payload dto.AlertStatusRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, invalidPayloadMessage)
	}

	if err := h.service.UpdateStatus(c.UserContext(), c.Params("id"), payload); err != nil {
		if errors.Is(err, service.ErrAlertNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "Alert not found")
		}
		if handled, sendErr := sendInputError(c, err); handled {
			return sendErr
		}
		requestLogger(h.logger, c).Error().Err(err).Str("alert_id", c.Params("id")).Msg("failed to update alert")
		return utils.SendErrorWithMessage(c, fiber.StatusInternalServerError, "Failed to update alert", err.Error())
	}

	return utils.SendJSON(c, fiber.StatusOK, dto.SuccessResponse{Success: true})
}
