package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/islandgo-api/internal/models"
	"github.com/noah-isme/islandgo-api/internal/repository"
	"github.com/noah-isme/islandgo-api/internal/schema"
)

func TestDatabaseStatusService(t *testing.T) {
	db, registry := setupServiceDB(t)
	require.NoError(t, db.Create(&models.Competitor{CompetitorName: "Yelp", Metric: "reviews", Value: 10, Date: time.Now()}).Error)

	sqlDB, err := db.DB()
	require.NoError(t, err)

	svc := NewDatabaseStatusService(sqlDB, registry, repository.NewAnalyticsRepository(db, registry), testLogger())
	status, err := svc.Status(context.Background())
	require.NoError(t, err)
	require.True(t, status.Success)
	require.Equal(t, "Database connection successful!", status.Message)
	require.Len(t, status.Tables, len(schema.Definitions()))
	require.EqualValues(t, 1, status.Tables[string(schema.KindCompetitors)].Count)
	require.Equal(t, "Has data", status.Tables[string(schema.KindCompetitors)].Sample)
	require.Equal(t, "Empty", status.Tables[string(schema.KindViralContent)].Sample)
	require.NotEmpty(t, status.Timestamp)
}

func TestDatabaseStatusServicePingFailure(t *testing.T) {
	db, registry := setupServiceDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	closeServiceDB(t, db)

	svc := NewDatabaseStatusService(sqlDB, registry, repository.NewAnalyticsRepository(db, registry), testLogger())
	status, err := svc.Status(context.Background())
	require.Error(t, err)
	require.False(t, status.Success)
}
