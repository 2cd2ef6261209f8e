package post_service

import (
	"context"
	"log/slog"

	"blogsite-service/internal/application/service/txrunner"
	"blogsite-service/internal/application/validation"
	model "blogsite-service/internal/domain/models"
	ports "blogsite-service/internal/domain/ports/output"
)

type Service struct {
	uow       ports.UnitOfWork
	validator *validation.Validator
	log       ports.Logger
	metrics   ports.MetricsProvider
}

func NewPostService(
	uow ports.UnitOfWork,
	validator *validation.Validator,
	log ports.Logger,
	metrics ports.MetricsProvider,
) *Service {
	return &Service{
		uow:       uow,
		validator: validator,
		log:       log,
		metrics:   metrics,
	}
}

func (s *Service) ListPosts(ctx context.Context, filters model.PostFilters) (*model.PostPage, error) {
	filters = filters.Normalize()

	page, err := txrunner.Run(ctx, s.uow, s.log, func(tx ports.Transaction) (*model.PostPage, error) {
		posts, total, err := tx.PostRepository().List(ctx, filters)
		if err != nil {
			return nil, err
		}
		if posts == nil {
			posts = []*model.Post{}
		}
		return &model.PostPage{
			Items:      posts,
			Pagination: model.NewPagination(filters.PageRequest, total),
		}, nil
	})
	s.metrics.IncrementPostOperations("list", err == nil)
	if err != nil {
		s.log.Error("Failed to list posts", slog.String("search", filters.Search), slog.String("error", err.Error()))
		return nil, err
	}
	return page, nil
}

// GetPost returns the post together with its comments.
func (s *Service) GetPost(ctx context.Context, id int64) (*model.Post, error) {
	post, err := txrunner.Run(ctx, s.uow, s.log, func(tx ports.Transaction) (*model.Post, error) {
		post, err := tx.PostRepository().GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		comments, err := tx.CommentRepository().ListByPost(ctx, id)
		if err != nil {
			return nil, err
		}
		if comments == nil {
			comments = []*model.Comment{}
		}
		post.Comments = comments
		return post, nil
	})
	s.metrics.IncrementPostOperations("get", err == nil)
	if err != nil {
		s.log.Debug("Failed to get post", slog.Int64("post_id", id), slog.String("error", err.Error()))
		return nil, err
	}
	return post, nil
}

func (s *Service) CreatePost(ctx context.Context, dto *model.CreatePostDTO) (*model.Post, error) {
	post, err := s.validator.CreatePost(dto)
	if err != nil {
		s.metrics.IncrementPostOperations("create", false)
		return nil, err
	}

	created, err := txrunner.Run(ctx, s.uow, s.log, func(tx ports.Transaction) (*model.Post, error) {
		return tx.PostRepository().Create(ctx, post)
	})
	s.metrics.IncrementPostOperations("create", err == nil)
	if err != nil {
		s.log.Error("Failed to create post", slog.String("author", post.Author), slog.String("error", err.Error()))
		return nil, err
	}

	s.log.Info("Post created", slog.Int64("post_id", created.ID), slog.String("author", created.Author))
	return created, nil
}

func (s *Service) UpdatePost(ctx context.Context, id int64, dto *model.UpdatePostDTO) (*model.Post, error) {
	update, err := s.validator.UpdatePost(dto)
	if err != nil {
		s.metrics.IncrementPostOperations("update", false)
		return nil, err
	}

	updated, err := txrunner.Run(ctx, s.uow, s.log, func(tx ports.Transaction) (*model.Post, error) {
		return tx.PostRepository().Update(ctx, id, update)
	})
	s.metrics.IncrementPostOperations("update", err == nil)
	if err != nil {
		s.log.Debug("Failed to update post", slog.Int64("post_id", id), slog.String("error", err.Error()))
		return nil, err
	}

	s.log.Info("Post updated", slog.Int64("post_id", id))
	return updated, nil
}

// DeletePost removes the post; its comments go with it.
func (s *Service) DeletePost(ctx context.Context, id int64) error {
	_, err := txrunner.Run(ctx, s.uow, s.log, func(tx ports.Transaction) (struct{}, error) {
		return struct{}{}, tx.PostRepository().Delete(ctx, id)
	})
	s.metrics.IncrementPostOperations("delete", err == nil)
	if err != nil {
		s.log.Debug("Failed to delete post", slog.Int64("post_id", id), slog.String("error", err.Error()))
		return err
	}

	s.log.Info("Post deleted", slog.Int64("post_id", id))
	return nil
}
