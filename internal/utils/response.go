package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/islandgo-api/internal/dto"
)

// SendJSON writes payload with the given status.
func SendJSON(c *fiber.Ctx, status int, payload interface{}) error {
	if status == 0 {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(payload)
}

// SendPaginated writes the data and pagination envelope.
func SendPaginated[T any](c *fiber.Ctx, items []T, meta dto.PaginationMeta) error {
	if items == nil {
		items = []T{}
	}
	return SendJSON(c, fiber.StatusOK, dto.PaginatedResponse[T]{Data: items, Pagination: meta})
}

// SendError writes an error envelope carrying only the error text.
func SendError(c *fiber.Ctx, status int, message string) error {
	if message == "" {
		message = "error"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: message})
}

// SendErrorWithMessage writes an error envelope with a detail message.
func SendErrorWithMessage(c *fiber.Ctx, status int, message, detail string) error {
	if message == "" {
		message = "error"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: message, Message: detail})
}
