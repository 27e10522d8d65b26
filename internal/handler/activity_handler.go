package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/islandgo-api/internal/service"
	"github.com/noah-isme/islandgo-api/internal/utils"
)

// ActivityHandler lists recent activity.
type ActivityHandler struct {
	service service.ActivityService
}

// NewActivityHandler constructs the handler.
func NewActivityHandler(service service.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// Register attaches the activity route.
func (h *ActivityHandler) Register(router fiber.Router) {
	router.Get("/activity", h.recent)
}

func (h *ActivityHandler) recent(c *fiber.Ctx) error {
	return utils.SendJSON(c, fiber.StatusOK, h.service.Recent(c.UserContext(), queryInt(c, "limit")))
}
