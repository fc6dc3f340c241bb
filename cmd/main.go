package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"kunooz-ads/internal/adapter/cache"
	"kunooz-ads/internal/adapter/dedup"
	"kunooz-ads/internal/adapter/http"
	"kunooz-ads/internal/adapter/kafka"
	"kunooz-ads/internal/adapter/postgres"
	"kunooz-ads/internal/adapter/sqlite"
	"kunooz-ads/internal/adapter/usecase"
	"kunooz-ads/internal/config"
	"kunooz-ads/internal/config/configs"
	"kunooz-ads/internal/core/port"
	"kunooz-ads/internal/db"
	"kunooz-ads/internal/telemetry"
)

// store is the repository set of the selected driver.
type store interface {
	port.AdRepository
	port.AdminRepository
	port.StatsRepository
}

// main is the entry point of the ad server. It loads configuration, opens
// the selected store, wires the cache, dedup and event stream backends,
// then starts the HTTP server. On receiving a termination signal it
// gracefully shuts down the server and releases every backend.
func main() {
	seed := flag.Bool("seed", false, "insert demo placements and ads before serving")
	flag.Parse()

	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.NewLogger(os.Stdout).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	shutdownTracing, err := telemetry.InitTracing(ctx, cfg.Tracing, logger)
	if err != nil {
		logger.Error("tracing init error", slog.Any("error", err))
		return
	}

	repo, ping, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer closeStore()

	if *seed {
		if err = db.Seed(ctx, repo); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("demo data seeded")
	}

	var rdb *redis.Client
	if cfg.NeedsRedis() {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		if err = rdb.Ping(ctx).Err(); err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			return
		}
	}

	var backend port.CacheBackend
	switch cfg.Cache.Backend {
	case configs.BackendRedis:
		backend = cache.NewRedisBackend(rdb, cfg.Redis.KeyPrefix)
	default:
		mem, err := cache.NewMemoryBackend(cfg.Cache.MaxEntries)
		if err != nil {
			logger.Error("cache init error", slog.Any("error", err))
			return
		}
		defer mem.Close()
		backend = mem
	}
	renderCache := cache.NewRenderCache(backend, logger)

	var dedupStore port.DedupStore
	switch cfg.Dedup.Backend {
	case configs.BackendRedis:
		dedupStore = dedup.NewRedisStore(rdb, cfg.Redis.KeyPrefix)
	default:
		mem := dedup.NewMemoryStore(time.Now)
		sweeper, err := mem.ScheduleSweep(cfg.Dedup.SweepSchedule, logger)
		if err != nil {
			logger.Error("dedup sweep schedule error", slog.Any("error", err))
			return
		}
		defer sweeper.Stop()
		dedupStore = mem
	}
	deduplicator := dedup.New(dedupStore, cfg.Dedup.FailOpen, logger)

	var publisher port.EventPublisher = kafka.Nop{}
	if cfg.Kafka.Enabled() {
		p := kafka.NewPublisher(cfg.Kafka)
		defer closeQuietly(logger, "kafka publisher", p)
		publisher = p
		logger.Info("publishing tracking events", slog.String("topic", cfg.Kafka.Topic))
	}

	svc := httpadapter.Services{
		Tracking: usecase.NewAdUseCase(repo, renderCache, deduplicator,
			usecase.WithPublisher(publisher),
			usecase.WithLogger(logger),
		),
		Admin: usecase.NewAdminUseCase(repo, renderCache, time.Now),
		Stats: usecase.NewStatsUseCase(repo, renderCache, time.Now),
	}
	if cfg.Auth.JWTSecret == "" {
		logger.Warn("AUTH_JWT_SECRET is empty, admin API disabled")
	}

	handler := httpadapter.NewHandler(svc, httpadapter.Options{
		PublicBaseURL:   cfg.HTTP.PublicBaseURL,
		TrackingTimeout: cfg.HTTP.TrackingTimeout,
		TrustProxy:      cfg.HTTP.TrustProxy,
		JWTSecret:       cfg.Auth.JWTSecret,
		Ping:            ping,
	}, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		exitCode = 0
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
	if err = shutdownTracing(shutdownCtx); err != nil {
		logger.Error("tracing shutdown error", slog.Any("error", err))
	}
}

// openStore connects the configured driver and returns its repository,
// a health probe and a release func.
func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (store, func(context.Context) error, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreSQLite:
		sqlDB, err := db.NewSQLite(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, nil, nil, err
		}
		logger.Info("using sqlite store", slog.String("path", cfg.SQLite.Path))
		return sqlite.NewAdRepository(sqlDB), sqlDB.PingContext, func() { closeQuietly(logger, "sqlite", sqlDB) }, nil
	default:
		// Optionally run migrations if configured.
		if cfg.Psql.RunMigrations {
			version, err := db.Migrate(cfg.Psql.Addr.String())
			if err != nil {
				return nil, nil, nil, fmt.Errorf("migrate: %w", err)
			}
			logger.Info("schema up to date", slog.Uint64("version", uint64(version)))
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, nil, nil, err
		}
		return postgres.NewAdRepository(pool), pool.Ping, pool.Close, nil
	}
}

func closeQuietly(logger *slog.Logger, name string, c io.Closer) {
	if err := c.Close(); err != nil {
		logger.Error("close error", slog.String("component", name), slog.Any("error", err))
	}
}
