package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogsite-service/internal/custom_errors"
	"blogsite-service/internal/infrastructure/logger"
	"blogsite-service/internal/infrastructure/outbound/metrics/prometheus"
)

type listing struct {
	Titles []string `json:"titles"`
}

func newCache() *Cache {
	return NewCache(100, logger.New("test"), prometheus.NewPrometheusMetricsProvider())
}

func TestCache_SetGet(t *testing.T) {
	ctx := context.Background()
	c := newCache()

	var got listing
	assert.ErrorIs(t, c.Get(ctx, "blog:posts:list:page=1", &got), custom_errors.ErrCacheMiss)

	require.NoError(t, c.Set(ctx, "blog:posts:list:page=1", listing{Titles: []string{"a", "b"}}, 10*time.Minute))
	require.NoError(t, c.Get(ctx, "blog:posts:list:page=1", &got))
	assert.Equal(t, []string{"a", "b"}, got.Titles)
}

func TestCache_SetMovesKeyBetweenTTLClasses(t *testing.T) {
	ctx := context.Background()
	c := newCache()

	require.NoError(t, c.Set(ctx, "k", listing{Titles: []string{"old"}}, time.Minute))
	require.NoError(t, c.Set(ctx, "k", listing{Titles: []string{"new"}}, time.Hour))

	var got listing
	require.NoError(t, c.Get(ctx, "k", &got))
	assert.Equal(t, []string{"new"}, got.Titles)
}

func TestCache_DeletePrefix(t *testing.T) {
	ctx := context.Background()
	c := newCache()

	require.NoError(t, c.Set(ctx, "blog:posts:list:page=1", listing{}, 10*time.Minute))
	require.NoError(t, c.Set(ctx, "blog:posts:list:page=2", listing{}, 5*time.Minute))
	require.NoError(t, c.Set(ctx, "blog:comments:list:page=1", listing{}, 3*time.Minute))

	require.NoError(t, c.DeletePrefix(ctx, "blog:posts:"))

	var got listing
	assert.ErrorIs(t, c.Get(ctx, "blog:posts:list:page=1", &got), custom_errors.ErrCacheMiss)
	assert.ErrorIs(t, c.Get(ctx, "blog:posts:list:page=2", &got), custom_errors.ErrCacheMiss)
	assert.NoError(t, c.Get(ctx, "blog:comments:list:page=1", &got))
}
