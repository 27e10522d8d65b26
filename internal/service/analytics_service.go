package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/noah-isme/islandgo-api/internal/dto"
	"github.com/noah-isme/islandgo-api/internal/observability"
	"github.com/noah-isme/islandgo-api/internal/repository"
	"github.com/noah-isme/islandgo-api/internal/schema"
)

const (
	creatorsByMonthLimit = 12
	gapsByCityLimit      = 10
)

// AnalyticsService aggregates the dashboard summary.
type AnalyticsService interface {
	Dashboard(ctx context.Context, startDate, endDate string) (dto.AnalyticsResponse, error)
}

type analyticsService struct {
	repo     repository.AnalyticsRepository
	cache    *redis.Client
	cacheTTL time.Duration
	logger   zerolog.Logger
}

// NewAnalyticsService constructs the analytics service. cache may be nil.
func NewAnalyticsService(repo repository.AnalyticsRepository, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) AnalyticsService {
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return &analyticsService{
		repo:     repo,
		cache:    cache,
		cacheTTL: ttl,
		logger:   logger.With().Str("component", "analytics_service").Logger(),
	}
}

// Dashboard returns totals and breakdowns, restricted to [startDate, endDate) when
// both are given. A failed read yields a zeroed dashboard.
func (s *analyticsService) Dashboard(ctx context.Context, startDate, endDate string) (dto.AnalyticsResponse, error) {
	var window repository.TimeWindow
	if startDate != "" && endDate != "" {
		start, end, err := parseWindow(startDate, endDate)
		if err != nil {
			return dto.AnalyticsResponse{}, err
		}
		window = repository.TimeWindow{Start: start, End: end}
	}

	cacheKey := analyticsCacheKey(window)
	tracer := otel.Tracer("github.com/noah-isme/islandgo-api/internal/service/analytics")
	ctx, span := tracer.Start(ctx, "analytics.aggregate")
	span.SetAttributes(attribute.String("analytics.cache_key", cacheKey))
	defer span.End()

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey).Result()
		if err == nil {
			var response dto.AnalyticsResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				response.CacheHit = true
				observability.CacheLookups().WithLabelValues("analytics", "hit").Inc()
				span.SetAttributes(attribute.Bool("analytics.cache_hit", true))
				return response, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn().Err(err).Msg("failed to read analytics cache")
			span.RecordError(err)
		}
		observability.CacheLookups().WithLabelValues("analytics", "miss").Inc()
	}

	summary, err := s.build(ctx, window)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "aggregate_failed")
		observability.DegradedReads().WithLabelValues("analytics").Inc()
		s.logger.Error().Err(err).Msg("failed to aggregate analytics")
		return emptyDashboard(), nil
	}

	span.SetAttributes(
		attribute.Int64("analytics.creators", summary.Creators),
		attribute.Int64("analytics.gaps", summary.Gaps),
		attribute.Int64("analytics.viral", summary.Viral),
	)

	if s.cache != nil {
		payload, err := json.Marshal(summary)
		if err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store analytics cache")
				span.RecordError(err)
			}
		}
	}

	return summary, nil
}

func (s *analyticsService) build(ctx context.Context, window repository.TimeWindow) (dto.AnalyticsResponse, error) {
	summary := emptyDashboard()
	var months, cities, categories []repository.GroupCount

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		summary.Creators, err = s.repo.Count(groupCtx, schema.KindCreators, window)
		return err
	})
	group.Go(func() (err error) {
		summary.Gaps, err = s.repo.Count(groupCtx, schema.KindGaps, window)
		return err
	})
	group.Go(func() (err error) {
		summary.Viral, err = s.repo.Count(groupCtx, schema.KindViralContent, window)
		return err
	})
	group.Go(func() (err error) {
		months, err = s.repo.Aggregate(groupCtx, repository.AggregateQuery{
			Kind: schema.KindCreators, GroupBy: repository.GroupByMonth, Window: window, Limit: creatorsByMonthLimit,
		})
		return err
	})
	group.Go(func() (err error) {
		cities, err = s.repo.Aggregate(groupCtx, repository.AggregateQuery{
			Kind: schema.KindGaps, GroupBy: "city", Window: window, Limit: gapsByCityLimit,
		})
		return err
	})
	group.Go(func() (err error) {
		categories, err = s.repo.Aggregate(groupCtx, repository.AggregateQuery{
			Kind: schema.KindViralContent, GroupBy: "cuisine", Window: window,
		})
		return err
	})
	if err := group.Wait(); err != nil {
		return dto.AnalyticsResponse{}, err
	}

	for _, month := range months {
		summary.CreatorsByMonth = append(summary.CreatorsByMonth, dto.MonthCount{Month: month.Key, Count: month.Count})
	}
	for _, city := range cities {
		summary.GapsByCity = append(summary.GapsByCity, dto.CityCount{City: city.Key, Count: city.Count})
	}
	for _, category := range categories {
		summary.ViralByCategory = append(summary.ViralByCategory, dto.CategoryCount{Category: category.Key, Count: category.Count})
	}
	return summary, nil
}

func emptyDashboard() dto.AnalyticsResponse {
	return dto.AnalyticsResponse{
		CreatorsByMonth: []dto.MonthCount{},
		GapsByCity:      []dto.CityCount{},
		ViralByCategory: []dto.CategoryCount{},
	}
}

func analyticsCacheKey(window repository.TimeWindow) string {
	if window.Start.IsZero() && window.End.IsZero() {
		return "islandgo:analytics:v1:all"
	}
	return fmt.Sprintf("islandgo:analytics:v1:%d:%d", window.Start.Unix(), window.End.Unix())
}
