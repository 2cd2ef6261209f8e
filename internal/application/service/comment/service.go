package comment_service

import (
	"context"
	"log/slog"

	"blogsite-service/internal/application/service/txrunner"
	"blogsite-service/internal/application/validation"
	"blogsite-service/internal/custom_errors"
	model "blogsite-service/internal/domain/models"
	ports "blogsite-service/internal/domain/ports/output"
	post_repository "blogsite-service/internal/domain/ports/output/post"
)

type Service struct {
	uow       ports.UnitOfWork
	validator *validation.Validator
	log       ports.Logger
	metrics   ports.MetricsProvider
}

func NewCommentService(
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

func requirePost(ctx context.Context, posts post_repository.Repository, postID int64) error {
	exists, err := posts.Exists(ctx, postID)
	if err != nil {
		return err
	}
	if !exists {
		return custom_errors.ErrPostNotFound
	}
	return nil
}

// ListComments pages through comments, newest first. A post filter must name an existing post.
func (s *Service) ListComments(ctx context.Context, filters model.CommentFilters) (*model.CommentPage, error) {
	filters = filters.Normalize()

	page, err := txrunner.Run(ctx, s.uow, s.log, func(tx ports.Transaction) (*model.CommentPage, error) {
		if filters.PostID != nil {
			if err := requirePost(ctx, tx.PostRepository(), *filters.PostID); err != nil {
				return nil, err
			}
		}
		comments, total, err := tx.CommentRepository().List(ctx, filters)
		if err != nil {
			return nil, err
		}
		if comments == nil {
			comments = []*model.Comment{}
		}
		return &model.CommentPage{
			Items:      comments,
			Pagination: model.NewPagination(filters.PageRequest, total),
		}, nil
	})
	s.metrics.IncrementCommentOperations("list", err == nil)
	if err != nil {
		s.log.Debug("Failed to list comments", slog.String("error", err.Error()))
		return nil, err
	}
	return page, nil
}

func (s *Service) GetComment(ctx context.Context, id int64) (*model.Comment, error) {
	comment, err := txrunner.Run(ctx, s.uow, s.log, func(tx ports.Transaction) (*model.Comment, error) {
		return tx.CommentRepository().GetByID(ctx, id)
	})
	s.metrics.IncrementCommentOperations("get", err == nil)
	if err != nil {
		s.log.Debug("Failed to get comment", slog.Int64("comment_id", id), slog.String("error", err.Error()))
		return nil, err
	}
	return comment, nil
}

func (s *Service) CreateComment(ctx context.Context, dto *model.CreateCommentDTO) (*model.Comment, error) {
	comment, err := s.validator.CreateComment(dto)
	if err != nil {
		s.metrics.IncrementCommentOperations("create", false)
		return nil, err
	}

	created, err := txrunner.Run(ctx, s.uow, s.log, func(tx ports.Transaction) (*model.Comment, error) {
		if err := requirePost(ctx, tx.PostRepository(), comment.PostID); err != nil {
			return nil, err
		}
		return tx.CommentRepository().Create(ctx, comment)
	})
	s.metrics.IncrementCommentOperations("create", err == nil)
	if err != nil {
		s.log.Debug("Failed to create comment", slog.Int64("post_id", comment.PostID), slog.String("error", err.Error()))
		return nil, err
	}

	s.log.Info("Comment created", slog.Int64("comment_id", created.ID), slog.Int64("post_id", created.PostID))
	return created, nil
}

func (s *Service) UpdateComment(ctx context.Context, id int64, dto *model.UpdateCommentDTO) (*model.Comment, error) {
	update, err := s.validator.UpdateComment(dto)
	if err != nil {
		s.metrics.IncrementCommentOperations("update", false)
		return nil, err
	}

	updated, err := txrunner.Run(ctx, s.uow, s.log, func(tx ports.Transaction) (*model.Comment, error) {
		return tx.CommentRepository().Update(ctx, id, update)
	})
	s.metrics.IncrementCommentOperations("update", err == nil)
	if err != nil {
		s.log.Debug("Failed to update comment", slog.Int64("comment_id", id), slog.String("error", err.Error()))
		return nil, err
	}

	s.log.Info("Comment updated", slog.Int64("comment_id", id))
	return updated, nil
}

func (s *Service) DeleteComment(ctx context.Context, id int64) error {
	_, err := txrunner.Run(ctx, s.uow, s.log, func(tx ports.Transaction) (struct{}, error) {
		return struct{}{}, tx.CommentRepository().Delete(ctx, id)
	})
	s.metrics.IncrementCommentOperations("delete", err == nil)
	if err != nil {
		s.log.Debug("Failed to delete comment", slog.Int64("comment_id", id), slog.String("error", err.Error()))
		return err
	}

	s.log.Info("Comment deleted", slog.Int64("comment_id", id))
	return nil
}
