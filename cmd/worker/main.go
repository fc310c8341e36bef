package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"storehub-server/internal/config"
	"storehub-server/internal/domain/media"
	"storehub-server/internal/domain/search"
	"storehub-server/internal/infrastructure/database"
	"storehub-server/internal/infrastructure/logger"
	"storehub-server/internal/infrastructure/observability"
	"storehub-server/internal/infrastructure/queue"
	brandrepo "storehub-server/internal/infrastructure/repository/brand"
	categoryrepo "storehub-server/internal/infrastructure/repository/category"
	productrepo "storehub-server/internal/infrastructure/repository/product"
	reviewrepo "storehub-server/internal/infrastructure/repository/review"
	searchrepo "storehub-server/internal/infrastructure/repository/search"
	userrepo "storehub-server/internal/infrastructure/repository/user"
	"storehub-server/internal/infrastructure/storage"
	"storehub-server/internal/worker"
)

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := database.AutoMigrate(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	store, err := provideStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize storage")
	}

	jobQueue, err := provideQueue(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize queue")
	}
	defer jobQueue.Close()

	categories := categoryrepo.NewRepository(db)
	brands := brandrepo.NewRepository(db)
	users := userrepo.NewRepository(db)
	products := productrepo.NewRepository(db)
	reviews := reviewrepo.NewRepository(db)
	searchSync := search.NewSync(searchrepo.NewRepository(db), log)

	records := media.NewRecordWriter(categories, brands, users, products, reviews, searchSync, log)

	pool := worker.NewPool(jobQueue, store, records, worker.Config{
		WorkerCount: cfg.WorkerCount,
		JobTimeout:  cfg.MediaStoreTimeout,
	}, log)
	if err := pool.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("start worker pool")
	}

	metricsServer := startMetricsServer(cfg, log)

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	pool.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown metrics server")
	}

	log.Info().Msg("worker exited cleanly")
}

func provideStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (media.BlobStore, error) {
	switch {
	case cfg.IsLocalStorage():
		return storage.NewLocalStorage(cfg, log)
	case cfg.IsMinIOStorage():
		return storage.NewMinIOStorage(ctx, cfg, log)
	case cfg.IsS3Storage():
		return storage.NewS3Storage(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

func provideQueue(ctx context.Context, cfg *config.Config, log zerolog.Logger) (queue.Queue, error) {
	if !cfg.IsRedisQueue() {
		return queue.NewMemoryQueue(), nil
	}

	redisQueue, err := queue.NewRedisQueue(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	if _, err := redisQueue.RecoverPending(ctx); err != nil {
		return nil, err
	}
	return redisQueue, nil
}

func startMetricsServer(cfg *config.Config, log zerolog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.MetricsPort),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info().Int("port", cfg.MetricsPort).Msg("metrics server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("metrics server stopped")
		}
	}()
	return server
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
