package comment_repository

import (
	"context"

	model "blogsite-service/internal/domain/models"
)

//go:generate mockery --name Repository --dir . --output ../../../../../mocks/comment --outpkg mocks --filename Repository.go
type Repository interface {
	Create(ctx context.Context, comment *model.Comment) (*model.Comment, error)
	GetByID(ctx context.Context, id int64) (*model.Comment, error)
	Update(ctx context.Context, id int64, update *model.CommentUpdate) (*model.Comment, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filters model.CommentFilters) ([]*model.Comment, int64, error)
	ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error)
}
