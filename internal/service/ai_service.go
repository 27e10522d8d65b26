package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/datatypes"

	"github.com/noah-isme/islandgo-api/internal/dto"
	"github.com/noah-isme/islandgo-api/internal/insight"
	"github.com/noah-isme/islandgo-api/internal/models"
	"github.com/noah-isme/islandgo-api/internal/observability"
	"github.com/noah-isme/islandgo-api/internal/repository"
	"github.com/noah-isme/islandgo-api/internal/schema"
)

var (
	// ErrAIUnavailable indicates no text generator is configured.
	ErrAIUnavailable = errors.New("ai generator not configured")
	// ErrUnknownAIRequest indicates an unsupported AI request type.
	ErrUnknownAIRequest = errors.New("unknown ai request type")
)

// RequestError is a client error whose message is returned verbatim.
type RequestError struct {
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// InsightTransformer produces typed results from the text generator.
type InsightTransformer interface {
	RecruitCreators(ctx context.Context, city string) ([]insight.CreatorProfile, error)
	AnalyzeGaps(ctx context.Context) ([]insight.CityGap, error)
	GenerateViralContent(ctx context.Context, userName string, cities []string, cuisine string) (insight.ViralContent, error)
}

// AIService dispatches AI requests and stores their results.
type AIService interface {
	Available() bool
	Dispatch(ctx context.Context, req dto.AIRequest) (interface{}, error)
}

type aiService struct {
	transformer InsightTransformer
	creators    repository.CreatorRepository
	gaps        repository.GapRepository
	viral       repository.ViralContentRepository
	activity    ActivityRecorder
	text        textCleaner
	logger      zerolog.Logger
	tracer      trace.Tracer
}

// NewAIService constructs the AI service. A nil transformer makes every request fail
// with ErrAIUnavailable.
func NewAIService(transformer InsightTransformer, creators repository.CreatorRepository, gaps repository.GapRepository, viral repository.ViralContentRepository, activity ActivityRecorder, logger zerolog.Logger) AIService {
	return &aiService{
		transformer: transformer,
		creators:    creators,
		gaps:        gaps,
		viral:       viral,
		activity:    activity,
		text:        newTextCleaner(),
		logger:      logger.With().Str("component", "ai_service").Logger(),
		tracer:      otel.Tracer("github.com/noah-isme/islandgo-api/internal/service/ai"),
	}
}

func (s *aiService) Available() bool {
	return s.transformer != nil
}

func (s *aiService) Dispatch(ctx context.Context, req dto.AIRequest) (interface{}, error) {
	if !s.Available() {
		return nil, ErrAIUnavailable
	}

	requestType := strings.TrimSpace(req.Type)
	if requestType == "" || req.Data == nil {
		return nil, &RequestError{Message: "Invalid request: type and data are required"}
	}

	ctx, span := s.tracer.Start(ctx, "ai.dispatch")
	span.SetAttributes(attribute.String("ai.request_type", requestType))
	defer span.End()

	start := time.Now()
	result, err := s.dispatch(ctx, requestType, *req.Data)
	if err != nil {
		var requestErr *RequestError
		if !errors.As(err, &requestErr) && !errors.Is(err, ErrUnknownAIRequest) {
			span.RecordError(err)
			span.SetStatus(codes.Error, "ai_request_failed")
			s.logger.Error().Err(err).Str("type", requestType).Dur("duration", time.Since(start)).Msg("ai request failed")
		}
		return nil, err
	}

	s.logger.Info().Str("type", requestType).Dur("duration", time.Since(start)).Msg("ai request completed")
	return result, nil
}

func (s *aiService) dispatch(ctx context.Context, requestType string, data dto.AIRequestData) (interface{}, error) {
	switch requestType {
	case dto.AIRequestRecruitCreators:
		city := strings.TrimSpace(data.City)
		if city == "" {
			return nil, &RequestError{Message: "City is required for recruit-creators"}
		}
		return s.recruitCreators(ctx, city)
	case dto.AIRequestAnalyzeGaps:
		return s.analyzeGaps(ctx)
	case dto.AIRequestGenerateViral:
		userName := strings.TrimSpace(data.UserName)
		cuisine := strings.TrimSpace(data.Cuisine)
		if userName == "" || len(data.Cities) == 0 || cuisine == "" {
			return nil, &RequestError{Message: "userName, cities, and cuisine are required for generate-viral"}
		}
		return s.generateViral(ctx, userName, data.Cities, cuisine)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAIRequest, requestType)
	}
}

func (s *aiService) recruitCreators(ctx context.Context, city string) (dto.CreatorsResponse, error) {
	creators, err := s.transformer.RecruitCreators(ctx, city)
	if err != nil {
		return dto.CreatorsResponse{}, err
	}

	for _, profile := range creators {
		record := &models.Creator{
			City:            city,
			Name:            s.text.clean(profile.Name),
			InstagramHandle: s.text.clean(profile.InstagramHandle),
			Followers:       profile.Followers,
			EngagementRate:  profile.EngagementRate,
			FitReason:       s.text.clean(profile.FitReason),
			Initial:         profile.Initial,
		}
		if _, err := s.creators.Save(ctx, record); err != nil {
			s.persistenceFailed(schema.KindCreators, err)
			break
		}
	}

	s.record(ctx, models.Activity{
		Type:        models.ActivityCreatorRecruitment,
		Title:       "Creators recruited",
		Description: fmt.Sprintf("Found %d creators in %s", len(creators), city),
		Metadata:    map[string]interface{}{"city": city, "count": len(creators)},
	})

	return dto.CreatorsResponse{Creators: creators}, nil
}

func (s *aiService) analyzeGaps(ctx context.Context) (dto.GapsResponse, error) {
	gaps, err := s.transformer.AnalyzeGaps(ctx)
	if err != nil {
		return dto.GapsResponse{}, err
	}

	for _, gap := range gaps {
		record := &models.Gap{
			City:              s.text.clean(gap.City),
			State:             s.text.clean(gap.State),
			Coverage:          gap.Coverage,
			Priority:          gap.Priority,
			MissingCategories: datatypes.JSONSlice[string](gap.MissingCategories),
		}
		if _, err := s.gaps.Save(ctx, record); err != nil {
			s.persistenceFailed(schema.KindGaps, err)
			break
		}
	}

	return dto.GapsResponse{Gaps: gaps}, nil
}

func (s *aiService) generateViral(ctx context.Context, userName string, cities []string, cuisine string) (insight.ViralContent, error) {
	content, err := s.transformer.GenerateViralContent(ctx, userName, cities, cuisine)
	if err != nil {
		return insight.ViralContent{}, err
	}

	record := &models.ViralContent{
		UserName: s.text.clean(userName),
		Cities:   datatypes.JSONSlice[string](cities),
		Cuisine:  cuisine,
		Caption:  s.text.clean(content.Caption),
		Badges:   datatypes.JSONSlice[models.Badge](content.Badges),
	}
	if _, err := s.viral.Save(ctx, record); err != nil {
		s.persistenceFailed(schema.KindViralContent, err)
	}

	s.record(ctx, models.Activity{
		Type:        models.ActivityViralContent,
		Title:       "Viral content generated",
		Description: fmt.Sprintf("Caption for %s across %d cities", userName, len(cities)),
		Metadata:    map[string]interface{}{"userName": userName, "cuisine": cuisine, "badges": len(content.Badges)},
	})

	return content, nil
}

func (s *aiService) persistenceFailed(kind schema.Kind, err error) {
	observability.AIPersistenceFailures().WithLabelValues(string(kind)).Inc()
	s.logger.Error().Err(err).Str("kind", string(kind)).Msg("failed to persist ai result")
}

func (s *aiService) record(ctx context.Context, activity models.Activity) {
	if s.activity != nil {
		s.activity.Record(ctx, activity)
	}
}
