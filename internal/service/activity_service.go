package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/noah-isme/islandgo-api/internal/models"
	"github.com/noah-isme/islandgo-api/internal/observability"
	"github.com/noah-isme/islandgo-api/internal/repository"
)

// ActivitySubject is the broker subject activities are published on.
const ActivitySubject = "islandgo.activity"

// ActivityPublisher broadcasts encoded activities. *nats.Conn satisfies it.
type ActivityPublisher interface {
	Publish(subject string, data []byte) error
}

// ActivityRecorder records user-facing events. Recording never fails the caller.
type ActivityRecorder interface {
	Record(ctx context.Context, activity models.Activity)
}

// ActivityService records and lists recent activity.
type ActivityService interface {
	ActivityRecorder
	Recent(ctx context.Context, limit int) []models.Activity
}

type activityService struct {
	feed         repository.ActivityFeedRepository
	publisher    ActivityPublisher
	defaultLimit int
	logger       zerolog.Logger
	now          func() time.Time
}

// NewActivityService constructs the activity service. publisher may be nil.
func NewActivityService(feed repository.ActivityFeedRepository, publisher ActivityPublisher, defaultLimit int, logger zerolog.Logger) ActivityService {
	if defaultLimit <= 0 || defaultLimit > repository.ActivityFeedCapacity {
		defaultLimit = repository.ActivityFeedCapacity
	}
	return &activityService{
		feed:         feed,
		publisher:    publisher,
		defaultLimit: defaultLimit,
		logger:       logger.With().Str("component", "activity_service").Logger(),
		now:          time.Now,
	}
}

func (s *activityService) Record(ctx context.Context, activity models.Activity) {
	if activity.ID == "" {
		activity.ID = models.NewID()
	}
	if activity.Timestamp == 0 {
		activity.Timestamp = s.now().UnixMilli()
	}

	if err := s.feed.Push(ctx, activity); err != nil {
		observability.ActivityEvents().WithLabelValues(activity.Type, "store_failed").Inc()
		if !errors.Is(err, repository.ErrActivityFeedUnavailable) {
			s.logger.Warn().Err(err).Str("type", activity.Type).Msg("failed to store activity")
		}
	} else {
		observability.ActivityEvents().WithLabelValues(activity.Type, "stored").Inc()
	}

	if s.publisher == nil {
		return
	}

	payload, err := json.Marshal(activity)
	if err != nil {
		s.logger.Warn().Err(err).Str("type", activity.Type).Msg("failed to encode activity")
		return
	}
	if err := s.publisher.Publish(ActivitySubject, payload); err != nil {
		observability.ActivityEvents().WithLabelValues(activity.Type, "publish_failed").Inc()
		s.logger.Warn().Err(err).Str("type", activity.Type).Msg("failed to publish activity")
		return
	}
	observability.ActivityEvents().WithLabelValues(activity.Type, "published").Inc()
}

// Recent lists the newest activities first. An unavailable feed yields an empty list.
func (s *activityService) Recent(ctx context.Context, limit int) []models.Activity {
	if limit <= 0 {
		limit = s.defaultLimit
	}

	activities, err := s.feed.Recent(ctx, limit)
	if err != nil {
		if !errors.Is(err, repository.ErrActivityFeedUnavailable) {
			s.logger.Warn().Err(err).Msg("failed to read activity feed")
		}
		return []models.Activity{}
	}
	return activities
}
