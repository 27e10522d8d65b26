package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/islandgo-api/internal/service"
	"github.com/noah-isme/islandgo-api/internal/utils"
)

// DatabaseHandler reports database connectivity.
type DatabaseHandler struct {
	service service.DatabaseStatusService
	logger  zerolog.Logger
}

// NewDatabaseHandler constructs the handler.
func NewDatabaseHandler(service service.DatabaseStatusService, logger zerolog.Logger) *DatabaseHandler {
	return &DatabaseHandler{
		service: service,
		logger:  logger.With().Str("component", "database_handler").Logger(),
	}
}

// Register attaches the database check route.
func (h *DatabaseHandler) Register(router fiber.Router) {
	router.Get("/db/test", h.test)
}

func (h *DatabaseHandler) test(c *fiber.Ctx) error {
	status, err := h.service.Status(c.UserContext())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("database check failed")
		status.Success = false
		status.Error = err.Error()
		status.Message = "Database connection failed. Check your database URL configuration."
		return utils.SendJSON(c, fiber.StatusInternalServerError, status)
	}
	return utils.SendJSON(c, fiber.StatusOK, status)
}
