package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/islandgo-api/internal/dto"
	"github.com/noah-isme/islandgo-api/internal/models"
	"github.com/noah-isme/islandgo-api/internal/repository"
)

func TestReportDays(t *testing.T) {
	cases := map[string]int{
		"7":      7,
		"90d":    90,
		"":       30,
		"custom": 30,
		"0":      30,
		"-5":     30,
	}
	for input, expected := range cases {
		require.Equal(t, expected, reportDays(input), input)
	}
}

func TestReportServiceGenerate(t *testing.T) {
	db, registry := setupServiceDB(t)
	logger := testLogger()
	now := time.Date(2025, 5, 31, 12, 0, 0, 0, time.UTC)

	require.NoError(t, db.Create(&models.Campaign{
		Name: "Old", Status: models.CampaignStatusCompleted, Budget: 10,
		StartDate: now.AddDate(-1, 0, 0), EndDate: now.AddDate(-1, 1, 0), Platform: "Instagram",
	}).Error)
	require.NoError(t, db.Create(&models.Budget{Category: "Ads", Allocated: 100, Month: "May", Year: 2025}).Error)
	require.NoError(t, db.Create(&[]models.EngagementMetric{
		{ContentID: "recent", Platform: "TikTok", Date: now.AddDate(0, 0, -3)},
		{ContentID: "stale", Platform: "TikTok", Date: now.AddDate(0, 0, -45)},
	}).Error)
	require.NoError(t, db.Create(&models.SocialMediaPost{Platform: "Instagram", PostID: "p1", Date: now.AddDate(0, 0, -10)}).Error)

	svc := NewReportService(
		repository.NewCampaignRepository(db, registry, logger),
		repository.NewBudgetRepository(db, registry, logger),
		repository.NewEngagementRepository(db, registry, logger),
		repository.NewSocialMediaRepository(db, registry, logger),
		logger,
	).(*reportService)
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	report, err := svc.Generate(ctx, dto.ReportRequest{Type: ReportComprehensive})
	require.NoError(t, err)
	require.Len(t, report, 4)
	require.Len(t, report[dto.ReportSectionCampaigns], 1)
	require.Len(t, report[dto.ReportSectionBudgets], 1)
	engagement := report[dto.ReportSectionEngagement].([]models.EngagementMetric)
	require.Len(t, engagement, 1)
	require.Equal(t, "recent", engagement[0].ContentID)
	require.Len(t, report[dto.ReportSectionSocialMedia], 1)

	report, err = svc.Generate(ctx, dto.ReportRequest{Type: ReportEngagement, DateRange: "60"})
	require.NoError(t, err)
	require.Len(t, report, 1)
	require.Len(t, report[dto.ReportSectionEngagement], 2)

	report, err = svc.Generate(ctx, dto.ReportRequest{Type: ReportSocial, DateRange: "custom", StartDate: "2025-05-01", EndDate: "2025-05-20"})
	require.NoError(t, err)
	require.Len(t, report[dto.ReportSectionSocialMedia], 0)

	report, err = svc.Generate(ctx, dto.ReportRequest{Type: "pdf-export"})
	require.NoError(t, err)
	require.Empty(t, report)
}

func TestReportServiceReadFailure(t *testing.T) {
	db, registry := setupServiceDB(t)
	logger := testLogger()
	svc := NewReportService(
		repository.NewCampaignRepository(db, registry, logger),
		repository.NewBudgetRepository(db, registry, logger),
		repository.NewEngagementRepository(db, registry, logger),
		repository.NewSocialMediaRepository(db, registry, logger),
		logger,
	)
	closeServiceDB(t, db)

	_, err := svc.Generate(context.Background(), dto.ReportRequest{Type: ReportBudget})
	require.Error(t, err)
}
