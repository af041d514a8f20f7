package main

import (
	"context"
	"database/sql"
	"errors"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	aggregatorRepoPg "page-view-analytics/internal/aggregator/adapters/postgres"
	aggregatorMQ "page-view-analytics/internal/aggregator/adapters/rabbitmq"
	aggregatorUsecase "page-view-analytics/internal/aggregator/core/usecase"

	"page-view-analytics/internal/shared/config"
	"page-view-analytics/internal/shared/logger"
	sharedpg "page-view-analytics/internal/shared/postgres"
	"page-view-analytics/internal/shared/rabbitmq"
	"page-view-analytics/internal/shared/retry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("error").WithError(err).Fatal("failed to load config")
	}

	log := logger.New(cfg.LogLevel)
	log.WithField("partitions", cfg.NumPartitions).Info("starting workers")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var db *sql.DB
	if err := retry.Connect(ctx, log, "postgres", func() error {
		var openErr error
		db, openErr = sharedpg.Open(ctx, cfg.PostgresDSN, log)
		return openErr
	}); err != nil {
		log.WithError(err).Fatal("postgres unavailable")
	}
	defer db.Close()

	broker := rabbitmq.NewClient(log)
	if err := retry.Connect(ctx, log, "rabbitmq", func() error {
		return broker.Connect(cfg.RabbitMQURL)
	}); err != nil {
		log.WithError(err).Fatal("rabbitmq unavailable")
	}
	defer broker.Close()

	writer := aggregatorRepoPg.NewPageViewRepository(aggregatorRepoPg.NewSQLDB(db))
	consumer := aggregatorMQ.NewQueueConsumer(broker)

	// One single-goroutine aggregator per partition; partitions run in
	// parallel, each owning its buffer exclusively.
	g, gctx := errgroup.WithContext(ctx)
	for partition := 0; partition < cfg.NumPartitions; partition++ {
		svc := aggregatorUsecase.NewAggregatorService(
			partition,
			cfg.BatchSize,
			cfg.FlushInterval,
			consumer,
			writer,
			log,
		)
		g.Go(func() error {
			return svc.Run(gctx)
		})
	}

	log.WithField("partitions", cfg.NumPartitions).Info("all aggregator workers started")

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Fatal("worker stopped")
	}

	log.Info("workers exiting")
}
