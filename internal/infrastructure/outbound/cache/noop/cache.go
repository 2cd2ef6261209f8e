// Package noop provides a listing cache that stores nothing. It is used when
// caching is disabled or Redis is unreachable at start-up.
package noop

import (
	"context"
	"time"

	"blogsite-service/internal/custom_errors"
)

type Cache struct{}

func NewCache() *Cache {
	return &Cache{}
}

func (Cache) Get(ctx context.Context, key string, dest any) error {
	return custom_errors.ErrCacheMiss
}

func (Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return nil
}

func (Cache) DeletePrefix(ctx context.Context, prefix string) error {
	return nil
}
