package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/islandgo-api/internal/config"
	"github.com/noah-isme/islandgo-api/internal/utils"
)

// HealthResponse represents the payload returned by the health endpoint.
type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Service     string    `json:"service"`
	Environment string    `json:"environment"`
	AI          bool      `json:"ai"`
}

// HealthCheck returns a handler that reports liveness. aiEnabled reports whether a
// text generator is configured.
func HealthCheck(cfg config.Config, aiEnabled bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload := HealthResponse{
			Status:      "ok",
			Timestamp:   time.Now().UTC(),
			Service:     cfg.AppName,
			Environment: cfg.AppEnv,
			AI:          aiEnabled,
		}

		return utils.SendJSON(c, fiber.StatusOK, payload)
	}
}
