package comment_service

import (
	"context"

	model "blogsite-service/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../../mocks/comment --outpkg mocks --filename Service.go
type Service interface {
	ListComments(ctx context.Context, filters model.CommentFilters) (*model.CommentPage, error)
	GetComment(ctx context.Context, id int64) (*model.Comment, error)
	CreateComment(ctx context.Context, dto *model.CreateCommentDTO) (*model.Comment, error)
	UpdateComment(ctx context.Context, id int64, dto *model.UpdateCommentDTO) (*model.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
}
