package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"carrental/internal/cache"
	"carrental/internal/config"
	"carrental/internal/database"
	"carrental/internal/events"
	"carrental/internal/handlers"
	"carrental/internal/jobs"
	"carrental/internal/log"
	"carrental/internal/repository"
	"carrental/internal/security"
	"carrental/internal/server"
	"carrental/internal/service"
	"carrental/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.New(cfg.Environment, cfg.Logging.Level)

	ctx := context.Background()

	dbPool, err := database.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect postgres")
	}
	if cfg.Postgres.AutoMigrate {
		if err := database.Migrate(ctx, dbPool, logger); err != nil {
			logger.Fatal().Err(err).Msg("migrations failed")
		}
	}

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect redis")
	}

	objectStore, err := storage.NewObjectStore(cfg.Storage)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init object store")
	}
	if err := objectStore.EnsureBuckets(ctx); err != nil {
		logger.Warn().Err(err).Msg("ensure buckets failed")
	}

	publisher := events.NewPublisher(redisClient, cfg.Events.Stream, cfg.Events.MaxLen, logger)

	users := repository.NewUserRepository(dbPool)
	roles := repository.NewRoleRepository(dbPool)
	locations := repository.NewLocationRepository(dbPool)
	vehicles := repository.NewVehicleRepository(dbPool)
	rentals := repository.NewRentalRepository(dbPool)
	payments := repository.NewPaymentRepository(dbPool)
	reviews := repository.NewReviewRepository(dbPool)

	hasher := security.NewPasswordHasher(cfg.Security.BcryptCost)
	tokens := security.NewTokenManager(cfg.Security.JWTSecret, cfg.Security.JWTTTL)
	authService := service.NewAuthService(users, roles, hasher, tokens, publisher, logger)

	svc := handlers.Services{
		Auth:      authService,
		Users:     service.NewUserService(users, roles, hasher, logger),
		Roles:     service.NewRoleService(roles),
		Locations: service.NewLocationService(locations),
		Vehicles:  service.NewVehicleService(vehicles, locations, objectStore, cfg.Storage.BucketVehicleImages, logger),
		Rentals:   service.NewRentalService(rentals, users, vehicles, publisher, logger),
		Payments:  service.NewPaymentService(payments, rentals, users, publisher, logger),
		Reviews:   service.NewReviewService(reviews, rentals, users),
	}

	public := security.NewPublicRoutes(cfg.Security.PublicPaths)
	handlerSet := handlers.NewHandlerSet(logger, cfg.Environment, svc, public,
		handlers.HealthCheck{Name: "database", Ping: dbPool.Ping},
		handlers.HealthCheck{Name: "redis", Ping: cache.Pinger(redisClient)},
		handlers.HealthCheck{Name: "storage", Ping: objectStore.Ping},
	)
	httpServer := server.NewHTTPServer(cfg, logger, handlerSet, authService, public)

	scheduler := jobs.NewScheduler(publisher, cfg.Jobs.ReportSchedule, logger)
	if err := scheduler.Start(); err != nil {
		logger.Error().Err(err).Msg("scheduler start failed")
	}

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	waitForShutdown(logger, httpServer, scheduler, dbPool, redisClient)
}

func waitForShutdown(logger zerolog.Logger, srv *server.HTTPServer, scheduler *jobs.Scheduler, db *pgxpool.Pool, redisClient *redis.Client) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}

	select {
	case <-scheduler.Stop().Done():
	case <-shutdownCtx.Done():
		logger.Warn().Msg("scheduled jobs still running at exit")
	}

	db.Close()
	if err := redisClient.Close(); err != nil {
		logger.Error().Err(err).Msg("redis close error")
	}

	logger.Info().Msg("server exited cleanly")
}
