package post_service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"blogsite-service/internal/application/cachekey"
	"blogsite-service/internal/custom_errors"
	model "blogsite-service/internal/domain/models"
	post_service "blogsite-service/internal/domain/ports/input/post"
	output "blogsite-service/internal/domain/ports/output"
	"blogsite-service/internal/domain/ports/output/cache"
)

// PostServiceCacheDecorator serves post listings read-through from the
// listing cache and drops them on every successful write.
type PostServiceCacheDecorator struct {
	service post_service.Service
	cache   cache.ListingCache
	keys    *cachekey.Builder
	ttl     time.Duration
	log     output.Logger
}

func NewPostServiceCacheDecorator(
	service post_service.Service,
	listingCache cache.ListingCache,
	keys *cachekey.Builder,
	ttl time.Duration,
	log output.Logger,
) post_service.Service {
	return &PostServiceCacheDecorator{
		service: service,
		cache:   listingCache,
		keys:    keys,
		ttl:     ttl,
		log:     log,
	}
}

// ListPosts is not atomic with invalidation: a miss that overlaps a write can
// store the pre-write page, which then lives until its TTL expires.
func (d *PostServiceCacheDecorator) ListPosts(ctx context.Context, filters model.PostFilters) (*model.PostPage, error) {
	filters = filters.Normalize()
	key := d.keys.PostsList(filters)

	var cached model.PostPage
	err := d.cache.Get(ctx, key, &cached)
	if err == nil {
		d.log.Debug("Post listing served from cache", slog.String("key", key))
		return &cached, nil
	}
	if !errors.Is(err, custom_errors.ErrCacheMiss) {
		d.log.Warn("Failed to get post listing from cache",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}

	page, err := d.service.ListPosts(ctx, filters)
	if err != nil {
		return nil, err
	}

	if err := d.cache.Set(ctx, key, page, d.ttl); err != nil {
		d.log.Warn("Failed to cache post listing",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
	return page, nil
}

func (d *PostServiceCacheDecorator) GetPost(ctx context.Context, id int64) (*model.Post, error) {
	return d.service.GetPost(ctx, id)
}

func (d *PostServiceCacheDecorator) CreatePost(ctx context.Context, dto *model.CreatePostDTO) (*model.Post, error) {
	post, err := d.service.CreatePost(ctx, dto)
	if err != nil {
		return nil, err
	}
	d.keys.Invalidate(ctx, d.cache, d.log, cachekey.EntityPosts)
	return post, nil
}

func (d *PostServiceCacheDecorator) UpdatePost(ctx context.Context, id int64, dto *model.UpdatePostDTO) (*model.Post, error) {
	post, err := d.service.UpdatePost(ctx, id, dto)
	if err != nil {
		return nil, err
	}
	d.keys.Invalidate(ctx, d.cache, d.log, cachekey.EntityPosts)
	return post, nil
}

func (d *PostServiceCacheDecorator) DeletePost(ctx context.Context, id int64) error {
	if err := d.service.DeletePost(ctx, id); err != nil {
		return err
	}
	// comments were removed with the post
	d.keys.Invalidate(ctx, d.cache, d.log, cachekey.EntityPosts, cachekey.EntityComments)
	return nil
}
