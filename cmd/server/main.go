package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"blogsite-service/internal/application/cachekey"
	comment_service "blogsite-service/internal/application/service/comment"
	post_service "blogsite-service/internal/application/service/post"
	"blogsite-service/internal/application/validation"
	ports "blogsite-service/internal/domain/ports/output"
	"blogsite-service/internal/domain/ports/output/cache"
	"blogsite-service/internal/infrastructure/config"
	delivery_http "blogsite-service/internal/infrastructure/inbound/http"
	metrics_server "blogsite-service/internal/infrastructure/inbound/metrics"
	"blogsite-service/internal/infrastructure/logger"
	memory_cache "blogsite-service/internal/infrastructure/outbound/cache/memory"
	noop_cache "blogsite-service/internal/infrastructure/outbound/cache/noop"
	redis_cache "blogsite-service/internal/infrastructure/outbound/cache/redis"
	prometheus_metrics "blogsite-service/internal/infrastructure/outbound/metrics/prometheus"
	"blogsite-service/internal/infrastructure/outbound/repository/memory"
	"blogsite-service/internal/infrastructure/outbound/repository/postgres"
)

func main() {
	cfg := config.MustLoad()
	ctx := context.Background()
	log := logger.New(cfg.Env)

	metrics := prometheus_metrics.NewPrometheusMetricsProvider()

	var unitOfWork ports.UnitOfWork
	switch cfg.Database.Driver {
	case config.DatabaseDriverMemory:
		log.Warn("Using in-memory storage, data will not survive a restart")
		unitOfWork = memory.NewUnitOfWork(memory.NewStore(), log)
	default:
		dsn := cfg.Database.DSN()
		if cfg.Database.AutoMigrate {
			if err := postgres.RunMigrations(dsn, log); err != nil {
				log.Error("Failed to apply migrations", slog.String("error", err.Error()))
				os.Exit(1)
			}
		}

		poolConfig, err := pgxpool.ParseConfig(dsn)
		if err != nil {
			log.Error("Failed to parse postgres poolConfig", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if cfg.Database.MaxConns > 0 {
			poolConfig.MaxConns = cfg.Database.MaxConns
		}

		pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer pool.Close()

		unitOfWork = postgres.NewPostgresUOW(pool, log, metrics)
	}

	listingCache, closeCache := newListingCache(cfg, log, metrics)
	defer closeCache()

	validator := validation.New()
	keys := cachekey.NewBuilder(cfg.Cache.KeyPrefix)

	postService := post_service.NewPostServiceCacheDecorator(
		post_service.NewPostService(unitOfWork, validator, log, metrics),
		listingCache,
		keys,
		cfg.Cache.PostsListTTL,
		log,
	)
	commentService := comment_service.NewCommentServiceCacheDecorator(
		comment_service.NewCommentService(unitOfWork, validator, log, metrics),
		listingCache,
		keys,
		cfg.Cache.CommentsListTTL,
		log,
	)

	router := delivery_http.NewRouter(delivery_http.RouterConfig{
		BasePath:    cfg.HTTPServer.BasePath,
		CORSOrigins: cfg.HTTPServer.CORSOrigins,
	}, postService, commentService, log, metrics)

	httpServer := delivery_http.NewServer(router, delivery_http.ServerConfig{
		Address:      cfg.HTTPServer.Address,
		Port:         cfg.HTTPServer.Port,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}, log)
	metricsServer := metrics_server.NewMetricsServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	metrics.SetServiceHealth(true)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
			quit <- syscall.SIGTERM
		}
		done <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	<-quit
	log.Info("Shutting down servers...")

	metrics.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	<-metricsDone

	log.Info("Server exited")
}

// newListingCache builds the configured cache backend. An unreachable Redis
// degrades to no caching rather than failing startup.
func newListingCache(cfg *config.Config, log *logger.Logger, metrics ports.MetricsProvider) (cache.ListingCache, func()) {
	switch cfg.Cache.Driver {
	case config.CacheDriverNone:
		log.Info("Listing cache disabled")
		return noop_cache.NewCache(), func() {}
	case config.CacheDriverMemory:
		log.Info("Using in-process listing cache", slog.Int("capacity", cfg.Cache.MemoryCapacity))
		return memory_cache.NewCache(cfg.Cache.MemoryCapacity, log, metrics), func() {}
	}

	log.Info("Connecting to Redis",
		slog.String("address", cfg.Redis.Address),
		slog.Int("port", cfg.Redis.Port),
		slog.Int("db", cfg.Redis.DB))
	redisClient, err := redis_cache.NewClient(cfg.Redis, log, metrics)
	if err != nil {
		log.Warn("Redis unavailable, continuing without listing cache", slog.String("error", err.Error()))
		return noop_cache.NewCache(), func() {}
	}
	return redisClient, func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", slog.String("error", err.Error()))
		}
	}
}
