package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/islandgo-api/internal/dto"
	"github.com/noah-isme/islandgo-api/internal/service"
	"github.com/noah-isme/islandgo-api/internal/utils"
)

const missingKeyMessage = "Server configuration error: API key not set"

// AIHandler dispatches AI requests.
type AIHandler struct {
	service service.AIService
	logger  zerolog.Logger
}

// NewAIHandler constructs the handler.
func NewAIHandler(service service.AIService, logger zerolog.Logger) *AIHandler {
	return &AIHandler{
		service: service,
		logger:  logger.With().Str("component", "ai_handler").Logger(),
	}
}

// Register attaches the AI route. Extra handlers run before dispatch, such as a rate limiter.
func (h *AIHandler) Register(router fiber.Router, middlewares ...fiber.Handler) {
	handlers := append(append([]fiber.Handler{}, middlewares...), h.dispatch)
	router.Post("/ai", handlers...)
	router.Get("/ai", h.methodNotAllowed)
}

func (h *AIHandler) dispatch(c *fiber.Ctx) error {
	if !h.service.Available() {
		requestLogger(h.logger, c).Error().Msg("ai api key is not set")
		return utils.SendError(c, fiber.StatusInternalServerError, missingKeyMessage)
	}

	var payload dto.AIRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "Invalid request: type and data are required")
	}

	result, err := h.service.Dispatch(c.UserContext(), payload)
	if err != nil {
		var requestErr *service.RequestError
		switch {
		case errors.As(err, &requestErr):
			return utils.SendError(c, fiber.StatusBadRequest, requestErr.Message)
		case errors.Is(err, service.ErrUnknownAIRequest):
			return utils.SendError(c, fiber.StatusBadRequest, "Unknown request type: "+payload.Type)
		case errors.Is(err, service.ErrAIUnavailable):
			return utils.SendError(c, fiber.StatusInternalServerError, missingKeyMessage)
		default:
			requestLogger(h.logger, c).Error().Err(err).Str("type", payload.Type).Msg("ai request failed")
			return utils.SendErrorWithMessage(c, fiber.StatusInternalServerError, "Internal server error", err.Error())
		}
	}

	return utils.SendJSON(c, fiber.StatusOK, result)
}

func (h *AIHandler) methodNotAllowed(c *fiber.Ctx) error {
	return utils.SendError(c, fiber.StatusMethodNotAllowed, "Method not allowed. Use POST.")
}
