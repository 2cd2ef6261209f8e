package comment_service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"blogsite-service/internal/application/cachekey"
	"blogsite-service/internal/custom_errors"
	model "blogsite-service/internal/domain/models"
	comment_service "blogsite-service/internal/domain/ports/input/comment"
	output "blogsite-service/internal/domain/ports/output"
	"blogsite-service/internal/domain/ports/output/cache"
)

// CommentServiceCacheDecorator serves comment listings read-through from the
// listing cache. Mutations drop both comment and post listings.
type CommentServiceCacheDecorator struct {
	service comment_service.Service
	cache   cache.ListingCache
	keys    *cachekey.Builder
	ttl     time.Duration
	log     output.Logger
}

func NewCommentServiceCacheDecorator(
	service comment_service.Service,
	listingCache cache.ListingCache,
	keys *cachekey.Builder,
	ttl time.Duration,
	log output.Logger,
) comment_service.Service {
	return &CommentServiceCacheDecorator{
		service: service,
		cache:   listingCache,
		keys:    keys,
		ttl:     ttl,
		log:     log,
	}
}

// ListComments is not atomic with invalidation: a miss that overlaps a write can
// store the pre-write page, which then lives until its TTL expires.
func (d *CommentServiceCacheDecorator) ListComments(ctx context.Context, filters model.CommentFilters) (*model.CommentPage, error) {
	filters = filters.Normalize()
	key := d.keys.CommentsList(filters)

	var cached model.CommentPage
	err := d.cache.Get(ctx, key, &cached)
	if err == nil {
		d.log.Debug("Comment listing served from cache", slog.String("key", key))
		return &cached, nil
	}
	if !errors.Is(err, custom_errors.ErrCacheMiss) {
		d.log.Warn("Failed to get comment listing from cache",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}

	page, err := d.service.ListComments(ctx, filters)
	if err != nil {
		return nil, err
	}

	if err := d.cache.Set(ctx, key, page, d.ttl); err != nil {
		d.log.Warn("Failed to cache comment listing",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
	return page, nil
}

func (d *CommentServiceCacheDecorator) GetComment(ctx context.Context, id int64) (*model.Comment, error) {
	return d.service.GetComment(ctx, id)
}

// Comment writes change comment_count on post listings too.
func (d *CommentServiceCacheDecorator) CreateComment(ctx context.Context, dto *model.CreateCommentDTO) (*model.Comment, error) {
	comment, err := d.service.CreateComment(ctx, dto)
	if err != nil {
		return nil, err
	}
	d.keys.Invalidate(ctx, d.cache, d.log, cachekey.EntityComments, cachekey.EntityPosts)
	return comment, nil
}

func (d *CommentServiceCacheDecorator) UpdateComment(ctx context.Context, id int64, dto *model.UpdateCommentDTO) (*model.Comment, error) {
	comment, err := d.service.UpdateComment(ctx, id, dto)
	if err != nil {
		return nil, err
	}
	d.keys.Invalidate(ctx, d.cache, d.log, cachekey.EntityComments, cachekey.EntityPosts)
	return comment, nil
}

func (d *CommentServiceCacheDecorator) DeleteComment(ctx context.Context, id int64) error {
	if err := d.service.DeleteComment(ctx, id); err != nil {
		return err
	}
	d.keys.Invalidate(ctx, d.cache, d.log, cachekey.EntityComments, cachekey.EntityPosts)
	return nil
}
