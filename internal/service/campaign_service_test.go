package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/islandgo-api/internal/dto"
	"github.com/noah-isme/islandgo-api/internal/models"
	"github.com/noah-isme/islandgo-api/internal/repository"
	"github.com/noah-isme/islandgo-api/internal/utils"
)

func newCampaignServiceForTest(t *testing.T, activity ActivityRecorder) (CampaignService, func()) {
	t.Helper()
	db, registry := setupServiceDB(t)
	logger := testLogger()
	svc := NewCampaignService(
		repository.NewCampaignRepository(db, registry, logger),
		repository.NewBudgetRepository(db, registry, logger),
		repository.NewConversionRepository(db, registry, logger),
		activity,
		utils.NewValidator(),
		logger,
	)
	return svc, func() { closeServiceDB(t, db) }
}

func TestCampaignServiceCreateNormalisesAndRecordsActivity(t *testing.T) {
	activity := &recordingActivity{}
	svc, _ := newCampaignServiceForTest(t, activity)
	ctx := context.Background()

	id, err := svc.CreateCampaign(ctx, dto.CampaignRequest{
		Name:      "<b>Spring Launch</b>",
		Status:    "Launching",
		Budget:    5000,
		StartDate: "2025-03-01",
		EndDate:   "2025-03-31",
		Platform:  "Instagram",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	campaigns := svc.ListCampaigns(ctx, dto.CampaignListRequest{Status: models.CampaignStatusDraft})
	require.Len(t, campaigns, 1)
	require.Equal(t, id, campaigns[0].ID)
	require.Equal(t, "Spring Launch", campaigns[0].Name)
	require.Equal(t, models.CampaignStatusDraft, campaigns[0].Status)
	require.Equal(t, 5000.0, campaigns[0].Budget)

	recorded := activity.recorded()
	require.Len(t, recorded, 1)
	require.Equal(t, models.ActivityCampaignLaunch, recorded[0].Type)
	require.Equal(t, id, recorded[0].Metadata["campaignId"])
}

func TestCampaignServiceValidation(t *testing.T) {
	svc, _ := newCampaignServiceForTest(t, nil)
	ctx := context.Background()

	_, err := svc.CreateCampaign(ctx, dto.CampaignRequest{Name: "Only a name"})
	require.Error(t, err)
	require.Equal(t, "Missing required fields: budget, start_date, end_date, platform", utils.MissingFieldsMessage(err))

	_, err = svc.CreateCampaign(ctx, dto.CampaignRequest{
		Name:      "Bad dates",
		Budget:    10,
		StartDate: "next week",
		EndDate:   "2025-03-31",
		Platform:  "TikTok",
	})
	require.True(t, errors.Is(err, ErrInvalidDate))
}

func TestCampaignServiceListsAllUnlessPaged(t *testing.T) {
	svc, _ := newCampaignServiceForTest(t, nil)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		_, err := svc.CreateBudget(ctx, dto.BudgetRequest{Category: "Ads", Allocated: 100, Month: "March", Year: 2025})
		require.NoError(t, err)
	}

	require.Len(t, svc.ListBudgets(ctx, dto.BudgetListRequest{}), 12)
	require.Len(t, svc.ListBudgets(ctx, dto.BudgetListRequest{ListRequest: dto.ListRequest{Paged: true}}), 10)
	require.Len(t, svc.ListBudgets(ctx, dto.BudgetListRequest{ListRequest: dto.ListRequest{Page: 3, Limit: 5, Paged: true}}), 2)
	require.Len(t, svc.ListBudgets(ctx, dto.BudgetListRequest{Month: "March"}), 12)
	require.Empty(t, svc.ListBudgets(ctx, dto.BudgetListRequest{Month: "March", Year: 2024}))
}

func TestCampaignServiceSaveFailure(t *testing.T) {
	svc, closeDB := newCampaignServiceForTest(t, nil)
	closeDB()

	_, err := svc.CreateConversion(context.Background(), dto.ConversionRequest{Stage: "checkout", Date: "2025-03-02"})
	require.Error(t, err)

	require.Empty(t, svc.ListConversions(context.Background(), dto.ConversionListRequest{}))
}
