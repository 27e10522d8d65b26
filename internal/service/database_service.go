package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/noah-isme/islandgo-api/internal/dto"
	"github.com/noah-isme/islandgo-api/internal/repository"
	"github.com/noah-isme/islandgo-api/internal/schema"
)

// Pinger checks connectivity to the relational store.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// DatabaseStatusService reports connectivity and table contents.
type DatabaseStatusService interface {
	Status(ctx context.Context) (dto.DatabaseStatusResponse, error)
}

type databaseStatusService struct {
	pinger  Pinger
	schema  schema.Ensurer
	counter repository.AnalyticsRepository
	logger  zerolog.Logger
	now     func() time.Time
}

// NewDatabaseStatusService constructs the database status service.
func NewDatabaseStatusService(pinger Pinger, ensurer schema.Ensurer, counter repository.AnalyticsRepository, logger zerolog.Logger) DatabaseStatusService {
	return &databaseStatusService{
		pinger:  pinger,
		schema:  ensurer,
		counter: counter,
		logger:  logger.With().Str("component", "database_status_service").Logger(),
		now:     time.Now,
	}
}

// Status creates missing tables, then counts every kind. Any failure is returned so
// the caller can report the connection as broken.
func (s *databaseStatusService) Status(ctx context.Context) (dto.DatabaseStatusResponse, error) {
	timestamp := s.now().UTC().Format(time.RFC3339)

	if s.schema != nil {
		s.schema.EnsureSchema(ctx)
	}
	if s.pinger != nil {
		if err := s.pinger.PingContext(ctx); err != nil {
			s.logger.Error().Err(err).Msg("database ping failed")
			return dto.DatabaseStatusResponse{Timestamp: timestamp}, err
		}
	}

	tables := make(map[string]dto.TableStatus)
	for _, def := range schema.Definitions() {
		count, err := s.counter.Count(ctx, def.Kind, repository.TimeWindow{})
		if err != nil {
			s.logger.Error().Err(err).Str("kind", string(def.Kind)).Msg("failed to count table")
			return dto.DatabaseStatusResponse{Timestamp: timestamp}, err
		}
		sample := "Empty"
		if count > 0 {
			sample = "Has data"
		}
		tables[string(def.Kind)] = dto.TableStatus{Count: count, Sample: sample}
	}

	return dto.DatabaseStatusResponse{
		Success:   true,
		Message:   "Database connection successful!",
		Tables:    tables,
		Timestamp: timestamp,
	}, nil
}
