package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/islandgo-api/internal/models"
)

func TestActivityFeedRepositoryKeepsNewestTen(t *testing.T) {
	server, err := miniredis.Run()
	require.NoError(t, err)
	defer server.Close()

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer client.Close()

	repo := NewActivityFeedRepository(client)
	ctx := context.Background()
	now := time.Now().UTC()

	for i := 0; i < 12; i++ {
		require.NoError(t, repo.Push(ctx, models.Activity{
			ID:        fmt.Sprintf("act-%02d", i),
			Type:      models.ActivityCampaignLaunch,
			Title:     "Campaign launched",
			Timestamp: now.Add(time.Duration(i) * time.Second).UnixMilli(),
		}))
	}

	activities, err := repo.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, activities, ActivityFeedCapacity)
	require.Equal(t, "act-11", activities[0].ID)
	require.Equal(t, "act-02", activities[9].ID)

	length, err := client.LLen(ctx, activityFeedKey).Result()
	require.NoError(t, err)
	require.Equal(t, int64(ActivityFeedCapacity), length)

	limited, err := repo.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, limited, 3)
}

func TestActivityFeedRepositoryWithoutClient(t *testing.T) {
	repo := NewActivityFeedRepository(nil)

	require.ErrorIs(t, repo.Push(context.Background(), models.Activity{}), ErrActivityFeedUnavailable)
	_, err := repo.Recent(context.Background(), 5)
	require.ErrorIs(t, err, ErrActivityFeedUnavailable)
}
