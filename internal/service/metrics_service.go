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

// MetricsService records engagement, social media and competitor observations.
type MetricsService interface {
	CreateEngagement(ctx context.Context, req dto.EngagementRequest) (string, error)
	ListEngagement(ctx context.Context, req dto.MetricListRequest) ([]models.EngagementMetric, error)
	CreateSocialMedia(ctx context.Context, req dto.SocialMediaRequest) (string, error)
	ListSocialMedia(ctx context.Context, req dto.MetricListRequest) ([]models.SocialMediaPost, error)
	CreateCompetitor(ctx context.Context, req dto.CompetitorRequest) (string, error)
	ListCompetitors(ctx context.Context, req dto.CompetitorListRequest) []models.Competitor
}

type metricsService struct {
	engagement  repository.EngagementRepository
	social      repository.SocialMediaRepository
	competitors repository.CompetitorRepository
	validator   *validator.Validate
	logger      zerolog.Logger
}

// NewMetricsService constructs the metrics service.
func NewMetricsService(engagement repository.EngagementRepository, social repository.SocialMediaRepository, competitors repository.CompetitorRepository, validator *validator.Validate, logger zerolog.Logger) MetricsService {
	return &metricsService{
		engagement:  engagement,
		social:      social,
		competitors: competitors,
		validator:   validator,
		logger:      logger.With().Str("component", "metrics_service").Logger(),
	}
}

func (s *metricsService) CreateEngagement(ctx context.Context, req dto.EngagementRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return "", err
	}

	metric := &models.EngagementMetric{
		ContentID:      strings.TrimSpace(req.ContentID),
		ContentType:    strings.TrimSpace(req.ContentType),
		Platform:       strings.TrimSpace(req.Platform),
		Views:          int64(req.Views),
		Likes:          int64(req.Likes),
		Shares:         int64(req.Shares),
		Comments:       int64(req.Comments),
		EngagementRate: float64(req.EngagementRate),
		Date:           date,
	}

	id, err := s.engagement.Save(ctx, metric)
	if err != nil {
		s.logger.Error().Err(err).Str("content_id", metric.ContentID).Msg("failed to save engagement metric")
		return "", err
	}
	return id, nil
}

func (s *metricsService) ListEngagement(ctx context.Context, req dto.MetricListRequest) ([]models.EngagementMetric, error) {
	start, end, err := parseWindow(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	filter := repository.MetricFilter{Platform: req.Platform, Start: start, End: end}
	return items(s.engagement.List(ctx, filter, listOptions(req.ListRequest, false)), schema.KindEngagement), nil
}

func (s *metricsService) CreateSocialMedia(ctx context.Context, req dto.SocialMediaRequest) (string, error) {
	req.Platform = strings.TrimSpace(req.Platform)
	if err := s.validator.Struct(req); err != nil {
		return "", err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return "", err
	}

	post := &models.SocialMediaPost{
		Platform:       req.Platform,
		PostID:         strings.TrimSpace(req.PostID),
		ContentType:    strings.TrimSpace(req.ContentType),
		Views:          int64(req.Views),
		Likes:          int64(req.Likes),
		Shares:         int64(req.Shares),
		Comments:       int64(req.Comments),
		Reach:          int64(req.Reach),
		Impressions:    int64(req.Impressions),
		EngagementRate: float64(req.EngagementRate),
		Date:           date,
	}

	id, err := s.social.Save(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Str("platform", post.Platform).Msg("failed to save social media post")
		return "", err
	}
	return id, nil
}

func (s *metricsService) ListSocialMedia(ctx context.Context, req dto.MetricListRequest) ([]models.SocialMediaPost, error) {
	start, end, err := parseWindow(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	filter := repository.MetricFilter{Platform: req.Platform, Start: start, End: end}
	return items(s.social.List(ctx, filter, listOptions(req.ListRequest, false)), schema.KindSocialMedia), nil
}

func (s *metricsService) CreateCompetitor(ctx context.Context, req dto.CompetitorRequest) (string, error) {
	req.CompetitorName = strings.TrimSpace(req.CompetitorName)
	req.Metric = strings.TrimSpace(req.Metric)
	if err := s.validator.Struct(req); err != nil {
		return "", err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return "", err
	}

	competitor := &models.Competitor{
		CompetitorName: req.CompetitorName,
		Metric:         req.Metric,
		Value:          float64(req.Value),
		Date:           date,
	}

	id, err := s.competitors.Save(ctx, competitor)
	if err != nil {
		s.logger.Error().Err(err).Str("competitor", competitor.CompetitorName).Msg("failed to save competitor metric")
		return "", err
	}
	return id, nil
}

func (s *metricsService) ListCompetitors(ctx context.Context, req dto.CompetitorListRequest) []models.Competitor {
	filter := repository.CompetitorFilter{CompetitorName: req.CompetitorName, Metric: req.Metric}
	return items(s.competitors.List(ctx, filter, listOptions(req.ListRequest, false)), schema.KindCompetitors)
}
