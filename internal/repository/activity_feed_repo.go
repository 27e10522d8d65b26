package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/noah-isme/islandgo-api/internal/models"
)

// ActivityFeedCapacity is the number of activities retained.
const ActivityFeedCapacity = 10

const activityFeedKey = "islandgo:activity:recent"

// ErrActivityFeedUnavailable is returned when no cache is configured.
var ErrActivityFeedUnavailable = errors.New("activity feed cache not configured")

// ActivityFeedRepository keeps the most recent activities in a capped Redis list.
type ActivityFeedRepository interface {
	Push(ctx context.Context, activity models.Activity) error
	Recent(ctx context.Context, limit int) ([]models.Activity, error)
}

type activityFeedRepository struct {
	client *redis.Client
}

// NewActivityFeedRepository constructs the feed repository. client may be nil.
func NewActivityFeedRepository(client *redis.Client) ActivityFeedRepository {
	return &activityFeedRepository{client: client}
}

func (r *activityFeedRepository) Push(ctx context.Context, activity models.Activity) error {
	if r.client == nil {
		return ErrActivityFeedUnavailable
	}

	payload, err := json.Marshal(activity)
	if err != nil {
		return fmt.Errorf("encode activity: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, activityFeedKey, payload)
		pipe.LTrim(ctx, activityFeedKey, 0, ActivityFeedCapacity-1)
		return nil
	})
	return err
}

// Recent returns up to limit activities, newest first. Undecodable entries are skipped.
func (r *activityFeedRepository) Recent(ctx context.Context, limit int) ([]models.Activity, error) {
	if r.client == nil {
		return nil, ErrActivityFeedUnavailable
	}
	if limit <= 0 || limit > ActivityFeedCapacity {
		limit = ActivityFeedCapacity
	}

	entries, err := r.client.LRange(ctx, activityFeedKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	activities := make([]models.Activity, 0, len(entries))
	for _, entry := range entries {
		var activity models.Activity
		if err := json.Unmarshal([]byte(entry), &activity); err != nil {
			continue
		}
		activities = append(activities, activity)
	}
	return activities, nil
}
