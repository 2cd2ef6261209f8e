package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"blogsite-service/internal/custom_errors"
	ports "blogsite-service/internal/domain/ports/output"
	"blogsite-service/internal/infrastructure/config"
)

const scanCount = 100

type Client struct {
	client  *redis.Client
	log     ports.Logger
	metrics ports.MetricsProvider
}

func NewClient(cfg config.Redis, log ports.Logger, metrics ports.MetricsProvider) (*Client, error) {
	opts, err := options(cfg)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error("Failed to connect to Redis", slog.String("error", err.Error()))
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Info("Successfully connected to Redis",
		slog.String("address", opts.Addr),
		slog.Int("db", opts.DB))

	return NewClientFromRedis(rdb, log, metrics), nil
}

func NewClientFromRedis(rdb *redis.Client, log ports.Logger, metrics ports.MetricsProvider) *Client {
	return &Client{
		client:  rdb,
		log:     log,
		metrics: metrics,
	}
}

func options(cfg config.Redis) (*redis.Options, error) {
	if cfg.URL != "" {
		opts, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		if cfg.PoolSize > 0 {
			opts.PoolSize = cfg.PoolSize
		}
		return opts, nil
	}
	return &redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Address, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	}, nil
}

func (c *Client) Get(ctx context.Context, key string, dest any) error {
	start := time.Now()
	defer func() { c.metrics.RecordCacheOperationDuration("get", time.Since(start)) }()

	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.log.Debug("Cache miss", slog.String("key", key))
			c.metrics.IncrementCacheMisses()
			return custom_errors.ErrCacheMiss
		}
		c.log.Error("Failed to get from cache",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to get from cache: %w", err)
	}

	if err := json.Unmarshal(val, dest); err != nil {
		c.log.Error("Failed to unmarshal cache value",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to unmarshal cache value: %w", err)
	}

	c.log.Debug("Cache hit", slog.String("key", key))
	c.metrics.IncrementCacheHits()
	return nil
}

func (c *Client) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	start := time.Now()
	defer func() { c.metrics.RecordCacheOperationDuration("set", time.Since(start)) }()

	data, err := json.Marshal(value)
	if err != nil {
		c.log.Error("Failed to marshal value for cache",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		c.log.Error("Failed to set cache",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to set cache: %w", err)
	}

	c.log.Debug("Successfully set cache",
		slog.String("key", key),
		slog.Duration("ttl", ttl))
	return nil
}

// DeletePrefix walks the keyspace with SCAN; KEYS would block the server on large databases.
func (c *Client) DeletePrefix(ctx context.Context, prefix string) error {
	start := time.Now()
	defer func() { c.metrics.RecordCacheOperationDuration("delete_prefix", time.Since(start)) }()

	pattern := prefix + "*"
	var (
		cursor  uint64
		deleted int64
	)
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, scanCount).Result()
		if err != nil {
			c.log.Error("Failed to scan keys by prefix",
				slog.String("pattern", pattern),
				slog.String("error", err.Error()))
			return fmt.Errorf("failed to scan keys by prefix: %w", err)
		}

		if len(keys) > 0 {
			n, err := c.client.Del(ctx, keys...).Result()
			if err != nil {
				c.log.Error("Failed to delete keys by prefix",
					slog.String("pattern", pattern),
					slog.String("error", err.Error()))
				return fmt.Errorf("failed to delete keys by prefix: %w", err)
			}
			deleted += n
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	c.log.Debug("Deleted keys by prefix",
		slog.String("pattern", pattern),
		slog.Int64("deleted_count", deleted))
	return nil
}

func (c *Client) Close() error {
	if err := c.client.Close(); err != nil {
		c.log.Error("Failed to close Redis connection", slog.String("error", err.Error()))
		return fmt.Errorf("failed to close Redis connection: %w", err)
	}

	c.log.Info("Redis connection closed")
	return nil
}

func (c *Client) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		c.log.Error("Redis ping failed", slog.String("error", err.Error()))
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}
