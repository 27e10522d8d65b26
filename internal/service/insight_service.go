package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/noah-isme/islandgo-api/internal/dto"
	"github.com/noah-isme/islandgo-api/internal/models"
	"github.com/noah-isme/islandgo-api/internal/repository"
	"github.com/noah-isme/islandgo-api/internal/schema"
)

// InsightDataService serves the stored results of AI operations.
type InsightDataService interface {
	ListCreators(ctx context.Context, req dto.CreatorListRequest) dto.PaginatedResponse[models.Creator]
	ListGaps(ctx context.Context, req dto.GapListRequest) dto.PaginatedResponse[models.Gap]
	ListViralContent(ctx context.Context, req dto.ListRequest) dto.PaginatedResponse[models.ViralContent]
	SetGapCampaign(ctx context.Context, req dto.GapCampaignRequest) (int64, error)
}

type insightDataService struct {
	creators  repository.CreatorRepository
	gaps      repository.GapRepository
	viral     repository.ViralContentRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewInsightDataService constructs the insight data service.
func NewInsightDataService(creators repository.CreatorRepository, gaps repository.GapRepository, viral repository.ViralContentRepository, validator *validator.Validate, logger zerolog.Logger) InsightDataService {
	return &insightDataService{
		creators:  creators,
		gaps:      gaps,
		viral:     viral,
		validator: validator,
		logger:    logger.With().Str("component", "insight_data_service").Logger(),
	}
}

func (s *insightDataService) ListCreators(ctx context.Context, req dto.CreatorListRequest) dto.PaginatedResponse[models.Creator] {
	opts := listOptions(req.ListRequest, true)
	page := s.creators.List(ctx, repository.CreatorFilter{City: req.City}, opts)
	return paginated(page, opts, schema.KindCreators)
}

func (s *insightDataService) ListGaps(ctx context.Context, req dto.GapListRequest) dto.PaginatedResponse[models.Gap] {
	opts := listOptions(req.ListRequest, true)
	page := s.gaps.List(ctx, repository.GapFilter{Priority: req.Priority}, opts)
	return paginated(page, opts, schema.KindGaps)
}

func (s *insightDataService) ListViralContent(ctx context.Context, req dto.ListRequest) dto.PaginatedResponse[models.ViralContent] {
	opts := listOptions(req, true)
	page := s.viral.List(ctx, repository.ViralContentFilter{}, opts)
	return paginated(page, opts, schema.KindViralContent)
}

// SetGapCampaign flags every gap recorded for the city and state. It returns the
// number of rows changed.
func (s *insightDataService) SetGapCampaign(ctx context.Context, req dto.GapCampaignRequest) (int64, error) {
	req.City = strings.TrimSpace(req.City)
	req.State = strings.TrimSpace(req.State)
	if err := s.validator.Struct(req); err != nil {
		return 0, err
	}

	updated, err := s.gaps.UpdateCampaignStatus(ctx, req.City, req.State, *req.Active)
	if err != nil {
		s.logger.Error().Err(err).Str("city", req.City).Str("state", req.State).Msg("failed to update gap campaign flag")
		return 0, err
	}

	s.logger.Info().Str("city", req.City).Str("state", req.State).Bool("active", *req.Active).Int64("updated", updated).Msg("gap campaign flag updated")
	return updated, nil
}
