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

// ContentCalendarService schedules content for publication.
type ContentCalendarService interface {
	Create(ctx context.Context, req dto.ContentCalendarRequest) (string, error)
	List(ctx context.Context, req dto.ContentCalendarListRequest) ([]models.ContentCalendarItem, error)
}

type contentCalendarService struct {
	repo      repository.ContentCalendarRepository
	validator *validator.Validate
	text      textCleaner
	logger    zerolog.Logger
}

// NewContentCalendarService constructs the content calendar service.
func NewContentCalendarService(repo repository.ContentCalendarRepository, validator *validator.Validate, logger zerolog.Logger) ContentCalendarService {
	return &contentCalendarService{
		repo:      repo,
		validator: validator,
		text:      newTextCleaner(),
		logger:    logger.With().Str("component", "content_calendar_service").Logger(),
	}
}

func (s *contentCalendarService) Create(ctx context.Context, req dto.ContentCalendarRequest) (string, error) {
	req.Title = s.text.clean(req.Title)
	if err := s.validator.Struct(req); err != nil {
		return "", err
	}

	scheduled, err := parseDate(req.ScheduledDate)
	if err != nil {
		return "", err
	}

	item := &models.ContentCalendarItem{
		Title:         req.Title,
		ContentType:   strings.TrimSpace(req.ContentType),
		Platform:      strings.TrimSpace(req.Platform),
		ScheduledDate: scheduled,
		Status:        models.NormalizeContentStatus(req.Status),
		CreatorID:     strings.TrimSpace(req.CreatorID),
	}

	id, err := s.repo.Save(ctx, item)
	if err != nil {
		s.logger.Error().Err(err).Str("title", item.Title).Msg("failed to save content calendar item")
		return "", err
	}
	return id, nil
}

func (s *contentCalendarService) List(ctx context.Context, req dto.ContentCalendarListRequest) ([]models.ContentCalendarItem, error) {
	start, end, err := parseWindow(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	filter := repository.ContentCalendarFilter{Status: req.Status, Start: start, End: end}
	return items(s.repo.List(ctx, filter, listOptions(req.ListRequest, false)), schema.KindContentCalendar), nil
}
