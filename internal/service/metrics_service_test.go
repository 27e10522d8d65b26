package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/islandgo-api/internal/dto"
	"github.com/noah-isme/islandgo-api/internal/models"
	"github.com/noah-isme/islandgo-api/internal/repository"
	"github.com/noah-isme/islandgo-api/internal/utils"
)

func TestMetricsServiceWindows(t *testing.T) {
	db, registry := setupServiceDB(t)
	logger := testLogger()
	svc := NewMetricsService(
		repository.NewEngagementRepository(db, registry, logger),
		repository.NewSocialMediaRepository(db, registry, logger),
		repository.NewCompetitorRepository(db, registry, logger),
		utils.NewValidator(),
		logger,
	)
	ctx := context.Background()

	for _, date := range []string{"2025-03-01", "2025-03-31T23:00:00Z", "2025-04-01"} {
		_, err := svc.CreateEngagement(ctx, dto.EngagementRequest{ContentID: date, Platform: "TikTok", Views: 10, Date: date})
		require.NoError(t, err)
	}

	metrics, err := svc.ListEngagement(ctx, dto.MetricListRequest{StartDate: "2025-03-01", EndDate: "2025-03-31"})
	require.NoError(t, err)
	require.Len(t, metrics, 2)

	_, err = svc.ListEngagement(ctx, dto.MetricListRequest{StartDate: "soon"})
	require.ErrorIs(t, err, ErrInvalidDate)

	_, err = svc.CreateSocialMedia(ctx, dto.SocialMediaRequest{Date: "2025-03-02"})
	require.Equal(t, "Missing required fields: platform", utils.MissingFieldsMessage(err))

	_, err = svc.CreateCompetitor(ctx, dto.CompetitorRequest{CompetitorName: "Yelp", Metric: "reviews", Value: 4.5, Date: "2025-03-02"})
	require.NoError(t, err)
	competitors := svc.ListCompetitors(ctx, dto.CompetitorListRequest{Metric: "reviews"})
	require.Len(t, competitors, 1)
	require.Equal(t, 4.5, competitors[0].Value)
}

func TestContentCalendarService(t *testing.T) {
	db, registry := setupServiceDB(t)
	svc := NewContentCalendarService(repository.NewContentCalendarRepository(db, registry, testLogger()), utils.NewValidator(), testLogger())
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.ContentCalendarRequest{Title: "Late", ScheduledDate: "2025-05-20", Status: "Queued"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, dto.ContentCalendarRequest{Title: "Early", ScheduledDate: "2025-05-02", Status: models.ContentStatusPublished})
	require.NoError(t, err)

	items, err := svc.List(ctx, dto.ContentCalendarListRequest{})
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "Early", items[0].Title)
	require.Equal(t, models.ContentStatusScheduled, items[1].Status)

	items, err = svc.List(ctx, dto.ContentCalendarListRequest{StartDate: "2025-05-10", EndDate: "2025-05-20"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Late", items[0].Title)

	_, err = svc.Create(ctx, dto.ContentCalendarRequest{Title: "<b></b>"})
	require.Equal(t, "Missing required fields: title, scheduled_date", utils.MissingFieldsMessage(err))
}
