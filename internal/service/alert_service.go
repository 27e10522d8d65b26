package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/islandgo-api/internal/dto"
	"github.com/noah-isme/islandgo-api/internal/models"
	"github.com/noah-isme/islandgo-api/internal/repository"
	"github.com/noah-isme/islandgo-api/internal/schema"
)

// AlertService raises alerts and moves them between statuses.
type AlertService interface {
	Create(ctx context.Context, req dto.AlertRequest) (string, error)
	List(ctx context.Context, req dto.AlertListRequest) []models.Alert
	UpdateStatus(ctx context.Context, id string, req dto.AlertStatusRequest) error
}

type alertService struct {
	repo      repository.AlertRepository
	validator *validator.Validate
	text      textCleaner
	logger    zerolog.Logger
	now       func() time.Time
}

// NewAlertService constructs the alert service.
func NewAlertService(repo repository.AlertRepository, validator *validator.Validate, logger zerolog.Logger) AlertService {
	return &alertService{
		repo:      repo,
		validator: validator,
		text:      newTextCleaner(),
		logger:    logger.With().Str("component", "alert_service").Logger(),
		now:       time.Now,
	}
}

func (s *alertService) Create(ctx context.Context, req dto.AlertRequest) (string, error) {
	req.Type = strings.TrimSpace(req.Type)
	req.Message = s.text.clean(req.Message)
	if err := s.validator.Struct(req); err != nil {
		return "", err
	}

	alert := &models.Alert{
		Type:         req.Type,
		Severity:     models.NormalizeAlertSeverity(req.Severity),
		Message:      req.Message,
		Threshold:    float64(req.Threshold),
		CurrentValue: float64(req.CurrentValue),
		Status:       models.NormalizeAlertStatus(req.Status),
	}

	if alert.Status == models.AlertStatusResolved {
		resolvedAt := s.now().UTC()
		if strings.TrimSpace(req.ResolvedAt) != "" {
			parsed, err := parseDate(req.ResolvedAt)
			if err != nil {
				return "", err
			}
			resolvedAt = parsed
		}
		alert.ResolvedAt = &resolvedAt
	}

	id, err := s.repo.Save(ctx, alert)
	if err != nil {
		s.logger.Error().Err(err).Str("type", alert.Type).Msg("failed to save alert")
		return "", err
	}
	return id, nil
}

func (s *alertService) List(ctx context.Context, req dto.AlertListRequest) []models.Alert {
	filter := repository.AlertFilter{Status: req.Status, Severity: req.Severity}
	return items(s.repo.List(ctx, filter, listOptions(req.ListRequest, false)), schema.KindAlerts)
}

// UpdateStatus normalises the requested status before applying it, so unknown values
// reactivate the alert.
func (s *alertService) UpdateStatus(ctx context.Context, id string, req dto.AlertStatusRequest) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrAlertNotFound
	}
	req.Status = strings.TrimSpace(req.Status)
	if err := s.validator.Struct(req); err != nil {
		return err
	}

	status := models.NormalizeAlertStatus(req.Status)
	if err := s.repo.UpdateStatus(ctx, id, status, s.now().UTC()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAlertNotFound
		}
		s.logger.Error().Err(err).Str("alert_id", id).Msg("failed to update alert status")
		return err
	}

	s.logger.Info().Str("alert_id", id).Str("status", status).Msg("alert status updated")
	return nil
}
