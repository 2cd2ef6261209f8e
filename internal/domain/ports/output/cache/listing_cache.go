package cache

import (
	"context"
	"time"
)

// ListingCache stores serialized listing results. Get returns custom_errors.ErrCacheMiss when the key is absent.
//
//go:generate mockery --name ListingCache --dir . --output ../../../../../mocks/cache --outpkg mocks --filename ListingCache.go
type ListingCache interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) error
}
