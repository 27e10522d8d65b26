package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/noah-isme/islandgo-api/internal/config"
	"github.com/noah-isme/islandgo-api/internal/handler"
	"github.com/noah-isme/islandgo-api/internal/insight"
	"github.com/noah-isme/islandgo-api/internal/middleware"
	"github.com/noah-isme/islandgo-api/internal/repository"
	"github.com/noah-isme/islandgo-api/internal/router"
	"github.com/noah-isme/islandgo-api/internal/schema"
	"github.com/noah-isme/islandgo-api/internal/service"
	"github.com/noah-isme/islandgo-api/internal/utils"
)

type testEnv struct {
	app  *fiber.App
	db   *gorm.DB
	repo struct {
		creators repository.CreatorRepository
		gaps     repository.GapRepository
		viral    repository.ViralContentRepository
	}
}

type envOptions struct {
	transformer service.InsightTransformer
	redis       *redis.Client
}

type stubTransformer struct {
	creators []insight.CreatorProfile
	gaps     []insight.CityGap
	viral    insight.ViralContent
	err      error
}

func (s *stubTransformer) RecruitCreators(ctx context.Context, city string) ([]insight.CreatorProfile, error) {
	return s.creators, s.err
}

func (s *stubTransformer) AnalyzeGaps(ctx context.Context) ([]insight.CityGap, error) {
	return s.gaps, s.err
}

func (s *stubTransformer) GenerateViralContent(ctx context.Context, userName string, cities []string, cuisine string) (insight.ViralContent, error) {
	return s.viral, s.err
}

func newTestEnv(t *testing.T, opts envOptions) *testEnv {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:http_%s?mode=memory&cache=shared", name)), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	logger := zerolog.Nop()
	registry := schema.NewRegistry(db, logger)
	registry.EnsureSchema(context.Background())
	require.True(t, registry.Ready())

	validate := utils.NewValidator()
	creatorRepo := repository.NewCreatorRepository(db, registry, logger)
	gapRepo := repository.NewGapRepository(db, registry, logger)
	viralRepo := repository.NewViralContentRepository(db, registry, logger)
	campaignRepo := repository.NewCampaignRepository(db, registry, logger)
	budgetRepo := repository.NewBudgetRepository(db, registry, logger)
	conversionRepo := repository.NewConversionRepository(db, registry, logger)
	engagementRepo := repository.NewEngagementRepository(db, registry, logger)
	socialRepo := repository.NewSocialMediaRepository(db, registry, logger)
	competitorRepo := repository.NewCompetitorRepository(db, registry, logger)
	alertRepo := repository.NewAlertRepository(db, registry, logger)
	calendarRepo := repository.NewContentCalendarRepository(db, registry, logger)
	analyticsRepo := repository.NewAnalyticsRepository(db, registry)
	activityRepo := repository.NewActivityFeedRepository(opts.redis)

	activityService := service.NewActivityService(activityRepo, nil, 10, logger)
	aiService := service.NewAIService(opts.transformer, creatorRepo, gapRepo, viralRepo, activityService, logger)

	cfg := config.Config{AppName: "IslandGo Test", AppEnv: "test", AIRateLimit: 100, AIRateLimitEvery: time.Minute}
	app := fiber.New()
	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		InsightDataHandler:     handler.NewInsightDataHandler(service.NewInsightDataService(creatorRepo, gapRepo, viralRepo, validate, logger), logger),
		ExportHandler:          handler.NewExportHandler(service.NewExportService(creatorRepo, gapRepo, viralRepo, logger), logger),
		CampaignHandler:        handler.NewCampaignHandler(service.NewCampaignService(campaignRepo, budgetRepo, conversionRepo, activityService, validate, logger), logger),
		MetricsHandler:         handler.NewMetricsHandler(service.NewMetricsService(engagementRepo, socialRepo, competitorRepo, validate, logger), logger),
		AlertHandler:           handler.NewAlertHandler(service.NewAlertService(alertRepo, validate, logger), logger),
		ContentCalendarHandler: handler.NewContentCalendarHandler(service.NewContentCalendarService(calendarRepo, validate, logger), logger),
		AnalyticsHandler:       handler.NewAnalyticsHandler(service.NewAnalyticsService(analyticsRepo, opts.redis, time.Minute, logger), service.NewReportService(campaignRepo, budgetRepo, engagementRepo, socialRepo, logger), logger),
		AIHandler:              handler.NewAIHandler(aiService, logger),
		ActivityHandler:        handler.NewActivityHandler(activityService),
		DatabaseHandler:        handler.NewDatabaseHandler(service.NewDatabaseStatusService(sqlDB, registry, analyticsRepo, logger), logger),
		AIEnabled:              aiService.Available(),
	})

	env := &testEnv{app: app, db: db}
	env.repo.creators = creatorRepo
	env.repo.gaps = gapRepo
	env.repo.viral = viralRepo
	return env
}

func (e *testEnv) do(t *testing.T, method, target, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, target, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeResponse(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
}
