package repository

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/islandgo-api/internal/models"
	"github.com/noah-isme/islandgo-api/internal/schema"
)

func TestAnalyticsRepositoryAggregates(t *testing.T) {
	db, registry := setupTestDB(t)
	creators := NewCreatorRepository(db, registry, zerolog.Nop())
	gaps := NewGapRepository(db, registry, zerolog.Nop())
	analytics := NewAnalyticsRepository(db, registry)
	ctx := context.Background()

	jan := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	mar := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	seedCreators(t, creators, "Austin", 2, jan)
	seedCreators(t, creators, "Reno", 3, mar)

	for _, city := range []string{"Reno", "Reno", "Boise"} {
		_, err := gaps.Save(ctx, &models.Gap{City: city, State: "XX", Coverage: 50, Priority: models.PriorityMedium, MissingCategories: []string{"General"}})
		require.NoError(t, err)
	}

	total, err := analytics.Count(ctx, schema.KindCreators, TimeWindow{})
	require.NoError(t, err)
	require.Equal(t, int64(5), total)

	windowed, err := analytics.Count(ctx, schema.KindCreators, TimeWindow{Start: mar.AddDate(0, 0, -1), End: mar.AddDate(0, 1, 0)})
	require.NoError(t, err)
	require.Equal(t, int64(3), windowed)

	months, err := analytics.Aggregate(ctx, AggregateQuery{Kind: schema.KindCreators, GroupBy: GroupByMonth, Limit: 12})
	require.NoError(t, err)
	require.Equal(t, []GroupCount{{Key: "Mar 2025", Count: 3}, {Key: "Jan 2025", Count: 2}}, months)

	cities, err := analytics.Aggregate(ctx, AggregateQuery{Kind: schema.KindGaps, GroupBy: "city", Limit: 10})
	require.NoError(t, err)
	require.Equal(t, []GroupCount{{Key: "Reno", Count: 2}, {Key: "Boise", Count: 1}}, cities)
}

func TestAnalyticsRepositoryUnknownKind(t *testing.T) {
	db, registry := setupTestDB(t)
	analytics := NewAnalyticsRepository(db, registry)

	_, err := analytics.Count(context.Background(), schema.Kind("unknown"), TimeWindow{})
	require.Error(t, err)
}
