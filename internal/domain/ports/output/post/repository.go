package post_repository

import (
	"context"

	model "blogsite-service/internal/domain/models"
)

//go:generate mockery --name Repository --dir . --output ../../../../../mocks/post --outpkg mocks --filename Repository.go
type Repository interface {
	Create(ctx context.Context, post *model.Post) (*model.Post, error)
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, id int64, update *model.PostUpdate) (*model.Post, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filters model.PostFilters) ([]*model.Post, int64, error)
}
