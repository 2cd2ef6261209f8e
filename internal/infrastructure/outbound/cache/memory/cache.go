package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/viccon/sturdyc"

	"blogsite-service/internal/custom_errors"
	ports "blogsite-service/internal/domain/ports/output"
)

const (
	numShards          = 10
	evictionPercentage = 10
)

// Cache keeps listings in process. sturdyc fixes the TTL per client, so one
// client is created for every TTL class that is written.
type Cache struct {
	mu       sync.Mutex
	clients  map[time.Duration]*sturdyc.Client[[]byte]
	capacity int
	log      ports.Logger
	metrics  ports.MetricsProvider
}

func NewCache(capacity int, log ports.Logger, metrics ports.MetricsProvider) *Cache {
	if capacity < numShards {
		capacity = numShards
	}
	return &Cache{
		clients:  make(map[time.Duration]*sturdyc.Client[[]byte]),
		capacity: capacity,
		log:      log,
		metrics:  metrics,
	}
}

func (c *Cache) client(ttl time.Duration) *sturdyc.Client[[]byte] {
	c.mu.Lock()
	defer c.mu.Unlock()

	client, ok := c.clients[ttl]
	if !ok {
		client = sturdyc.New[[]byte](c.capacity, numShards, ttl, evictionPercentage)
		c.clients[ttl] = client
	}
	return client
}

func (c *Cache) snapshot() []*sturdyc.Client[[]byte] {
	c.mu.Lock()
	defer c.mu.Unlock()

	clients := make([]*sturdyc.Client[[]byte], 0, len(c.clients))
	for _, client := range c.clients {
		clients = append(clients, client)
	}
	return clients
}

func (c *Cache) Get(ctx context.Context, key string, dest any) error {
	start := time.Now()
	defer func() { c.metrics.RecordCacheOperationDuration("get", time.Since(start)) }()

	for _, client := range c.snapshot() {
		data, ok := client.Get(key)
		if !ok {
			continue
		}
		if err := json.Unmarshal(data, dest); err != nil {
			c.log.Error("Failed to unmarshal cache value",
				slog.String("key", key),
				slog.String("error", err.Error()))
			return fmt.Errorf("failed to unmarshal cache value: %w", err)
		}
		c.log.Debug("Cache hit", slog.String("key", key))
		c.metrics.IncrementCacheHits()
		return nil
	}

	c.log.Debug("Cache miss", slog.String("key", key))
	c.metrics.IncrementCacheMisses()
	return custom_errors.ErrCacheMiss
}

func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	start := time.Now()
	defer func() { c.metrics.RecordCacheOperationDuration("set", time.Since(start)) }()

	data, err := json.Marshal(value)
	if err != nil {
		c.log.Error("Failed to marshal value for cache",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	target := c.client(ttl)
	// a key lives in exactly one TTL class
	for _, client := range c.snapshot() {
		if client != target {
			client.Delete(key)
		}
	}
	target.Set(key, data)

	c.log.Debug("Successfully set cache",
		slog.String("key", key),
		slog.Duration("ttl", ttl))
	return nil
}

func (c *Cache) DeletePrefix(ctx context.Context, prefix string) error {
	start := time.Now()
	defer func() { c.metrics.RecordCacheOperationDuration("delete_prefix", time.Since(start)) }()

	deleted := 0
	for _, client := range c.snapshot() {
		for _, key := range client.ScanKeys() {
			if strings.HasPrefix(key, prefix) {
				client.Delete(key)
				deleted++
			}
		}
	}

	c.log.Debug("Deleted keys by prefix",
		slog.String("prefix", prefix),
		slog.Int("deleted_count", deleted))
	return nil
}
