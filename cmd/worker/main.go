package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"carrental/internal/cache"
	"carrental/internal/config"
	"carrental/internal/database"
	"carrental/internal/events"
	"carrental/internal/log"
	"carrental/internal/repository"
	"carrental/internal/service"
	"carrental/internal/storage"
	"carrental/internal/tasks"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.New(cfg.Environment, cfg.Logging.Level).With().Str("component", "worker").Logger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect postgres")
	}
	defer dbPool.Close()

	client, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logger.Fatal().Err(err).Msg("redis connection failed")
	}
	defer client.Close()

	objectStore, err := storage.NewObjectStore(cfg.Storage)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init object store")
	}
	if err := objectStore.EnsureBuckets(ctx); err != nil {
		logger.Warn().Err(err).Msg("ensure buckets failed")
	}

	reports := service.NewReportService(repository.NewRentalRepository(dbPool), repository.NewPaymentRepository(dbPool))
	processor := tasks.NewProcessor(objectStore, reports, tasks.Buckets{
		Receipts: cfg.Storage.BucketReceipts,
		Reports:  cfg.Storage.BucketReports,
	}, logger)

	consumer := events.NewConsumer(client, events.ConsumerConfig{
		Stream:        cfg.Events.Stream,
		Group:         cfg.Events.Group,
		Consumer:      cfg.Events.Consumer,
		ClaimInterval: cfg.Events.ClaimInterval,
	}, logger, processor)

	logger.Info().Str("stream", cfg.Events.Stream).Str("group", cfg.Events.Group).Msg("worker started")
	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error().Err(err).Msg("consumer stopped unexpectedly")
	}
	logger.Info().Msg("worker exited")
}
