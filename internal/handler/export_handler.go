package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/islandgo-api/internal/dto"
	"github.com/noah-isme/islandgo-api/internal/service"
	"github.com/noah-isme/islandgo-api/internal/utils"
)

// ExportHandler serves raw insight rows for the dashboard's export button.
type ExportHandler struct {
	service service.ExportService
	logger  zerolog.Logger
}

// NewExportHandler constructs the handler.
func NewExportHandler(service service.ExportService, logger zerolog.Logger) *ExportHandler {
	return &ExportHandler{
		service: service,
		logger:  logger.With().Str("component", "export_handler").Logger(),
	}
}

// Register attaches the export route to the /data group.
func (h *ExportHandler) Register(router fiber.Router) {
	router.Get("/export", h.export)
}

func (h *ExportHandler) export(c *fiber.Ctx) error {
	req := dto.ExportRequest{
		Type:      strings.TrimSpace(c.Query("type", dto.ExportAll)),
		StartDate: strings.TrimSpace(c.Query("startDate")),
		EndDate:   strings.TrimSpace(c.Query("endDate")),
	}

	data, err := h.service.Export(c.UserContext(), req)
	if err != nil {
		if handled, sendErr := sendInputError(c, err); handled {
			return sendErr
		}
		requestLogger(h.logger, c).Error().Err(err).Str("type", req.Type).Msg("failed to export data")
		return utils.SendErrorWithMessage(c, fiber.StatusInternalServerError, "Failed to export data", err.Error())
	}

	return utils.SendJSON(c, fiber.StatusOK, data)
}
