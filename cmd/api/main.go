package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/islandgo-api/internal/config"
	"github.com/noah-isme/islandgo-api/internal/database"
	"github.com/noah-isme/islandgo-api/internal/handler"
	"github.com/noah-isme/islandgo-api/internal/insight"
	"github.com/noah-isme/islandgo-api/internal/middleware"
	"github.com/noah-isme/islandgo-api/internal/observability"
	"github.com/noah-isme/islandgo-api/internal/repository"
	"github.com/noah-isme/islandgo-api/internal/router"
	"github.com/noah-isme/islandgo-api/internal/schema"
	"github.com/noah-isme/islandgo-api/internal/service"
	"github.com/noah-isme/islandgo-api/internal/utils"
	"github.com/noah-isme/islandgo-api/pkg/ai"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", cfg.AppName).Logger()
	if cfg.IsProduction() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	observability.RegisterMetrics()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	registry := schema.NewRegistry(db, logger)
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 15*time.Second)
	registry.EnsureSchema(startupCtx)
	cancelStartup()

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(context.Background(), cfg.RedisURL)
		if err != nil {
			logger.Warn().Err(err).Msg("redis unavailable, analytics cache and activity feed disabled")
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	var publisher service.ActivityPublisher
	if cfg.NATSURL != "" {
		conn, err := database.ConnectNATS(cfg.NATSURL, cfg.AppName)
		if err != nil {
			logger.Warn().Err(err).Msg("nats unavailable, activity events will not be published")
		} else {
			defer drainNATS(conn, logger)
			publisher = conn
		}
	}

	var transformer service.InsightTransformer
	if cfg.AIAPIKey != "" {
		generator, err := ai.NewGenerator(ai.Config{
			Provider:  cfg.AIProvider,
			APIKey:    cfg.AIAPIKey,
			Model:     cfg.AIModel,
			BaseURL:   cfg.AIBaseURL,
			MaxTokens: cfg.AIMaxTokens,
		}, logger)
		if err != nil {
			log.Fatalf("failed to create ai generator: %v", err)
		}
		logger.Info().Str("provider", cfg.AIProvider).Str("model", generator.Model()).Msg("ai generator configured")
		transformer = insight.NewTransformer(generator, logger)
	} else {
		logger.Warn().Msg("no ai api key configured, /api/ai will answer with a configuration error")
	}

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
	activityRepo := repository.NewActivityFeedRepository(redisClient)

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to access database pool: %v", err)
	}
	defer sqlDB.Close()

	activityService := service.NewActivityService(activityRepo, publisher, cfg.ActivityLimit, logger)
	insightDataService := service.NewInsightDataService(creatorRepo, gapRepo, viralRepo, validate, logger)
	campaignService := service.NewCampaignService(campaignRepo, budgetRepo, conversionRepo, activityService, validate, logger)
	metricsService := service.NewMetricsService(engagementRepo, socialRepo, competitorRepo, validate, logger)
	alertService := service.NewAlertService(alertRepo, validate, logger)
	calendarService := service.NewContentCalendarService(calendarRepo, validate, logger)
	analyticsService := service.NewAnalyticsService(analyticsRepo, redisClient, cfg.AnalyticsTTL, logger)
	exportService := service.NewExportService(creatorRepo, gapRepo, viralRepo, logger)
	reportService := service.NewReportService(campaignRepo, budgetRepo, engagementRepo, socialRepo, logger)
	aiService := service.NewAIService(transformer, creatorRepo, gapRepo, viralRepo, activityService, logger)
	databaseService := service.NewDatabaseStatusService(sqlDB, registry, analyticsRepo, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger, AccessLog: !cfg.IsProduction()})
	router.Register(app, cfg, router.Dependencies{
		InsightDataHandler:     handler.NewInsightDataHandler(insightDataService, logger),
		ExportHandler:          handler.NewExportHandler(exportService, logger),
		CampaignHandler:        handler.NewCampaignHandler(campaignService, logger),
		MetricsHandler:         handler.NewMetricsHandler(metricsService, logger),
		AlertHandler:           handler.NewAlertHandler(alertService, logger),
		ContentCalendarHandler: handler.NewContentCalendarHandler(calendarService, logger),
		AnalyticsHandler:       handler.NewAnalyticsHandler(analyticsService, reportService, logger),
		AIHandler:              handler.NewAIHandler(aiService, logger),
		ActivityHandler:        handler.NewActivityHandler(activityService),
		DatabaseHandler:        handler.NewDatabaseHandler(databaseService, logger),
		AIEnabled:              aiService.Available(),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app, logger)
}

func drainNATS(conn *nats.Conn, logger zerolog.Logger) {
	if err := conn.Drain(); err != nil {
		logger.Warn().Err(err).Msg("failed to drain nats connection")
	}
}

func waitForShutdown(app *fiber.App, logger zerolog.Logger) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}

	logger.Info().Msg("server stopped")
}
