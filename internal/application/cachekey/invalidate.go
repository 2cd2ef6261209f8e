package cachekey

import (
	"context"
	"log/slog"

	ports "blogsite-service/internal/domain/ports/output"
	"blogsite-service/internal/domain/ports/output/cache"
)

// Invalidate drops every cached listing of the given entities. Failures are
// logged and otherwise ignored; the entries expire with their TTL.
func (b *Builder) Invalidate(ctx context.Context, c cache.ListingCache, log ports.Logger, entities ...Entity) {
	for _, entity := range entities {
		prefix := b.EntityPrefix(entity)
		if err := c.DeletePrefix(ctx, prefix); err != nil {
			log.Warn("Failed to invalidate cached listings",
				slog.String("prefix", prefix),
				slog.String("error", err.Error()))
		}
	}
}
