package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/islandgo-api/internal/dto"
	"github.com/noah-isme/islandgo-api/internal/middleware"
	"github.com/noah-isme/islandgo-api/internal/service"
	"github.com/noah-isme/islandgo-api/internal/utils"
)

const invalidPayloadMessage = "Invalid request payload"

// queryInt reads an integer query value. Missing or malformed values read as zero so
// the list defaults apply.
func queryInt(c *fiber.Ctx, key string) int {
	value := strings.TrimSpace(c.Query(key))
	if value == "" {
		return 0
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return parsed
}

func listRequest(c *fiber.Ctx) dto.ListRequest {
	return dto.ListRequest{
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
		Search: strings.TrimSpace(c.Query("search")),
		Paged:  c.Query("page") != "" || c.Query("limit") != "",
	}
}

func requestLogger(base zerolog.Logger, c *fiber.Ctx) *zerolog.Logger {
	logger := base
	if c != nil {
		if correlation := middleware.GetCorrelationID(c); correlation != "" {
			logger = base.With().Str("correlation_id", correlation).Logger()
		}
	}
	return &logger
}

func isValidationError(err error) bool {
	var validationErrors validator.ValidationErrors
	return errors.As(err, &validationErrors)
}

// sendInputError answers 400 for validation and date errors and reports whether it did.
func sendInputError(c *fiber.Ctx, err error) (bool, error) {
	switch {
	case isValidationError(err):
		return true, utils.SendError(c, fiber.StatusBadRequest, utils.MissingFieldsMessage(err))
	case errors.Is(err, service.ErrInvalidDate):
		return true, utils.SendErrorWithMessage(c, fiber.StatusBadRequest, "Invalid date", err.Error())
	default:
		return false, nil
	}
}

// sendCreateResult writes the outcome of an insert. Storage failures carry the driver
// message so clients can see why the row was rejected.
func sendCreateResult(c *fiber.Ctx, logger zerolog.Logger, resource string, id string, err error, acknowledge bool) error {
	if err != nil {
		if handled, sendErr := sendInputError(c, err); handled {
			return sendErr
		}
		requestLogger(logger, c).Error().Err(err).Str("resource", resource).Msg("failed to save record")
		return utils.SendErrorWithMessage(c, fiber.StatusInternalServerError, "Failed to save "+resource+": "+err.Error(), err.Error())
	}
	return utils.SendJSON(c, fiber.StatusOK, dto.CreatedResponse{ID: id, Success: acknowledge})
}

func sendQueryError(c *fiber.Ctx, logger zerolog.Logger, err error) error {
	if handled, sendErr := sendInputError(c, err); handled {
		return sendErr
	}
	requestLogger(logger, c).Error().Err(err).Msg("failed to read records")
	return utils.SendErrorWithMessage(c, fiber.StatusInternalServerError, "Failed to fetch records", err.Error())
}
