package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/noah-isme/islandgo-api/internal/dto"
	"github.com/noah-isme/islandgo-api/internal/models"
	"github.com/noah-isme/islandgo-api/internal/repository"
	"github.com/noah-isme/islandgo-api/internal/schema"
)

// CampaignService manages campaigns, their budgets and attributed conversions.
type CampaignService interface {
	CreateCampaign(ctx context.Context, req dto.CampaignRequest) (string, error)
	ListCampaigns(ctx context.Context, req dto.CampaignListRequest) []models.Campaign
	CreateBudget(ctx context.Context, req dto.BudgetRequest) (string, error)
	ListBudgets(ctx context.Context, req dto.BudgetListRequest) []models.Budget
	CreateConversion(ctx context.Context, req dto.ConversionRequest) (string, error)
	ListConversions(ctx context.Context, req dto.ConversionListRequest) []models.Conversion
}

type campaignService struct {
	campaigns   repository.CampaignRepository
	budgets     repository.BudgetRepository
	conversions repository.ConversionRepository
	activity    ActivityRecorder
	validator   *validator.Validate
	text        textCleaner
	logger      zerolog.Logger
}

// NewCampaignService constructs the campaign service. activity may be nil.
func NewCampaignService(campaigns repository.CampaignRepository, budgets repository.BudgetRepository, conversions repository.ConversionRepository, activity ActivityRecorder, validator *validator.Validate, logger zerolog.Logger) CampaignService {
	return &campaignService{
		campaigns:   campaigns,
		budgets:     budgets,
		conversions: conversions,
		activity:    activity,
		validator:   validator,
		text:        newTextCleaner(),
		logger:      logger.With().Str("component", "campaign_service").Logger(),
	}
}

func (s *campaignService) CreateCampaign(ctx context.Context, req dto.CampaignRequest) (string, error) {
	req.Name = s.text.clean(req.Name)
	req.Platform = strings.TrimSpace(req.Platform)
	if err := s.validator.Struct(req); err != nil {
		return "", err
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return "", err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return "", err
	}

	campaign := &models.Campaign{
		Name:        req.Name,
		Status:      models.NormalizeCampaignStatus(req.Status),
		Budget:      float64(req.Budget),
		Spent:       float64(req.Spent),
		StartDate:   start,
		EndDate:     end,
		Impressions: int64(req.Impressions),
		Clicks:      int64(req.Clicks),
		Conversions: int64(req.Conversions),
		Revenue:     float64(req.Revenue),
		Platform:    req.Platform,
	}

	id, err := s.campaigns.Save(ctx, campaign)
	if err != nil {
		s.logger.Error().Err(err).Str("name", campaign.Name).Msg("failed to save campaign")
		return "", err
	}

	if s.activity != nil {
		s.activity.Record(ctx, models.Activity{
			Type:        models.ActivityCampaignLaunch,
			Title:       "Campaign launched",
			Description: fmt.Sprintf("%s on %s with a budget of %.2f", campaign.Name, campaign.Platform, campaign.Budget),
			Metadata: map[string]interface{}{
				"campaignId": id,
				"status":     campaign.Status,
				"platform":   campaign.Platform,
			},
		})
	}

	return id, nil
}

func (s *campaignService) ListCampaigns(ctx context.Context, req dto.CampaignListRequest) []models.Campaign {
	filter := repository.CampaignFilter{Status: req.Status, Platform: req.Platform}
	return items(s.campaigns.List(ctx, filter, listOptions(req.ListRequest, false)), schema.KindCampaigns)
}

func (s *campaignService) CreateBudget(ctx context.Context, req dto.BudgetRequest) (string, error) {
	req.Category = s.text.clean(req.Category)
	req.Month = strings.TrimSpace(req.Month)
	if err := s.validator.Struct(req); err != nil {
		return "", err
	}

	budget := &models.Budget{
		Category:  req.Category,
		Allocated: float64(req.Allocated),
		Spent:     float64(req.Spent),
		Month:     req.Month,
		Year:      int(req.Year),
	}

	id, err := s.budgets.Save(ctx, budget)
	if err != nil {
		s.logger.Error().Err(err).Str("category", budget.Category).Msg("failed to save budget")
		return "", err
	}
	return id, nil
}

func (s *campaignService) ListBudgets(ctx context.Context, req dto.BudgetListRequest) []models.Budget {
	filter := repository.BudgetFilter{Month: req.Month, Year: req.Year}
	return items(s.budgets.List(ctx, filter, listOptions(req.ListRequest, false)), schema.KindBudgets)
}

func (s *campaignService) CreateConversion(ctx context.Context, req dto.ConversionRequest) (string, error) {
	req.Stage = strings.TrimSpace(req.Stage)
	if err := s.validator.Struct(req); err != nil {
		return "", err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return "", err
	}

	conversion := &models.Conversion{
		CampaignID: strings.TrimSpace(req.CampaignID),
		Stage:      req.Stage,
		UserID:     strings.TrimSpace(req.UserID),
		Value:      float64(req.Value),
		Date:       date,
	}

	id, err := s.conversions.Save(ctx, conversion)
	if err != nil {
		s.logger.Error().Err(err).Str("campaign_id", conversion.CampaignID).Msg("failed to save conversion")
		return "", err
	}
	return id, nil
}

func (s *campaignService) ListConversions(ctx context.Context, req dto.ConversionListRequest) []models.Conversion {
	filter := repository.ConversionFilter{CampaignID: req.CampaignID}
	return items(s.conversions.List(ctx, filter, listOptions(req.ListRequest, false)), schema.KindConversions)
}
