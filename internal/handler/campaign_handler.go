package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/islandgo-api/internal/dto"
	"github.com/noah-isme/islandgo-api/internal/service"
	"github.com/noah-isme/islandgo-api/internal/utils"
)

// CampaignHandler exposes campaigns, budgets and conversions.
type CampaignHandler struct {
	service service.CampaignService
	logger  zerolog.Logger
}

// NewCampaignHandler constructs the handler.
func NewCampaignHandler(service service.CampaignService, logger zerolog.Logger) *CampaignHandler {
	return &CampaignHandler{
		service: service,
		logger:  logger.With().Str("component", "campaign_handler").Logger(),
	}
}

// Register attaches campaign, budget and conversion routes.
func (h *CampaignHandler) Register(router fiber.Router) {
	router.Get("/campaigns", h.listCampaigns)
	router.Post("/campaigns", h.createCampaign)
	router.Get("/budgets", h.listBudgets)
	router.Post("/budgets", h.createBudget)
	router.Get("/conversions", h.listConversions)
	router.Post("/conversions", h.createConversion)
}

func (h *CampaignHandler) listCampaigns(c *fiber.Ctx) error {
	campaigns := h.service.ListCampaigns(c.UserContext(), dto.CampaignListRequest{
		ListRequest: listRequest(c),
		Status:      c.Query("status"),
		Platform:    c.Query("platform"),
	})
	return utils.SendJSON(c, fiber.StatusOK, campaigns)
}

func (h *CampaignHandler) createCampaign(c *fiber.Ctx) error {
	var payload dto.CampaignRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, invalidPayloadMessage)
	}
	id, err := h.service.CreateCampaign(c.UserContext(), payload)
	return sendCreateResult(c, h.logger, "campaign", id, err, true)
}

func (h *CampaignHandler) listBudgets(c *fiber.Ctx) error {
	budgets := h.service.ListBudgets(c.UserContext(), dto.BudgetListRequest{
		ListRequest: listRequest(c),
		Month:       c.Query("month"),
		Year:        queryInt(c, "year"),
	})
	return utils.SendJSON(c, fiber.StatusOK, budgets)
}

func (h *CampaignHandler) createBudget(c *fiber.Ctx) error {
	var payload dto.BudgetRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, invalidPayloadMessage)
	}
	id, err := h.service.CreateBudget(c.UserContext(), payload)
	return sendCreateResult(c, h.logger, "budget", id, err, true)
}

func (h *CampaignHandler) listConversions(c *fiber.Ctx) error {
	conversions := h.service.ListConversions(c.UserContext(), dto.ConversionListRequest{
		ListRequest: listRequest(c),
		CampaignID:  c.Query("campaignId"),
	})
	return utils.SendJSON(c, fiber.StatusOK, conversions)
}

func (h *CampaignHandler) createConversion(c *fiber.Ctx) error {
	var payload dto.ConversionRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, invalidPayloadMessage)
	}
	id, err := h.service.CreateConversion(c.UserContext(), payload)
	return sendCreateResult(c, h.logger, "conversion", id, err, false)
}
