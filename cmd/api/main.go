package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	pageviewsHttp "page-view-analytics/internal/pageviews/adapters/http/fiber"
	pageviewsMQ "page-view-analytics/internal/pageviews/adapters/rabbitmq"
	pageviewsUsecase "page-view-analytics/internal/pageviews/core/usecase"

	reportHttp "page-view-analytics/internal/report/adapters/http/fiber"
	reportRepoPg "page-view-analytics/internal/report/adapters/postgres"
	reportUsecase "page-view-analytics/internal/report/core/usecase"

	"page-view-analytics/internal/shared/config"
	"page-view-analytics/internal/shared/logger"
	sharedpg "page-view-analytics/internal/shared/postgres"
	"page-view-analytics/internal/shared/rabbitmq"
	"page-view-analytics/internal/shared/retry"

	"github.com/gofiber/fiber/v2"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "page-view-analytics/docs"
)

// @title Page View Analytics API
// @version 1.0
// @description Partitioned page view ingestion and 24-hour reporting
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("error").WithError(err).Fatal("failed to load config")
	}

	log := logger.New(cfg.LogLevel)
	log.WithField("port", cfg.Port).WithField("partitions", cfg.NumPartitions).Info("starting api")

	ctx := context.Background()

	// Postgres (report reads), with startup retry
	var db *sql.DB
	if err := retry.Connect(ctx, log, "postgres", func() error {
		var openErr error
		db, openErr = sharedpg.Open(ctx, cfg.PostgresDSN, log)
		return openErr
	}); err != nil {
		log.WithError(err).Fatal("postgres unavailable")
	}
	defer db.Close()

	// RabbitMQ (ingestion publishes), with startup retry
	broker := rabbitmq.NewClient(log)
	if err := retry.Connect(ctx, log, "rabbitmq", func() error {
		return broker.Connect(cfg.RabbitMQURL)
	}); err != nil {
		log.WithError(err).Fatal("rabbitmq unavailable")
	}
	defer broker.Close()

	// Publisher + repositories
	publisher := pageviewsMQ.NewPageViewPublisher(broker)
	reportRepository := reportRepoPg.NewReportRepository(reportRepoPg.NewSQLDB(db))

	// Usecases
	recordUC := pageviewsUsecase.NewRecordPageViewUseCase(publisher, cfg.NumPartitions, cfg.NumShards)
	getReportUC := reportUsecase.NewGetReportUseCase(reportRepository)

	// HTTP (Fiber) app + handlers
	app := fiber.New()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	pageViewHandler := pageviewsHttp.NewPageViewHandler(recordUC)
	app.Post("/page-views/single", pageViewHandler.RecordSingle)
	app.Post("/page-views/multi", pageViewHandler.RecordMulti)

	reportHandler := reportHttp.NewReportHandler(getReportUC)
	app.Get("/report", reportHandler.GetReport)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
			log.WithError(err).Error("fiber stopped")
		}
	}()

	log.Info("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.WithError(err).Error("fiber shutdown error")
	}

	log.Info("server exiting")
}
