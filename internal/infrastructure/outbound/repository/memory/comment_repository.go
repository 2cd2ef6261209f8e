package memory

import (
	"context"
	"log/slog"
	"sort"

	"blogsite-service/internal/custom_errors"
	model "blogsite-service/internal/domain/models"
	ports "blogsite-service/internal/domain/ports/output"
)

type CommentRepository struct {
	store *Store
	st    *state
	log   ports.Logger
}

func copyComment(c *model.Comment) *model.Comment {
	result := *c
	if c.Rating != nil {
		rating := *c.Rating
		result.Rating = &rating
	}
	result.Post = nil
	return &result
}

func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	if _, ok := r.st.posts[comment.PostID]; !ok {
		return nil, custom_errors.ErrPostNotFound
	}

	now := r.store.timestamp()
	created := copyComment(comment)
	created.ID = r.st.nextCommentID
	created.CreatedAt = now
	created.UpdatedAt = now
	r.st.nextCommentID++
	r.st.comments[created.ID] = created

	r.log.Debug("Created comment (memory impl)", slog.Int64("id", created.ID), slog.Int64("post_id", created.PostID))
	return copyComment(created), nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id int64) (*model.Comment, error) {
	comment, ok := r.st.comments[id]
	if !ok {
		return nil, custom_errors.ErrCommentNotFound
	}
	result := copyComment(comment)
	if post, ok := r.st.posts[comment.PostID]; ok {
		result.Post = post.Summary()
	}
	return result, nil
}

func (r *CommentRepository) Update(ctx context.Context, id int64, update *model.CommentUpdate) (*model.Comment, error) {
	comment, ok := r.st.comments[id]
	if !ok {
		return nil, custom_errors.ErrCommentNotFound
	}
	if update.Author != nil {
		comment.Author = *update.Author
	}
	if update.Content != nil {
		comment.Content = *update.Content
	}
	if update.RatingSet {
		comment.Rating = nil
		if update.Rating != nil {
			rating := *update.Rating
			comment.Rating = &rating
		}
	}
	comment.UpdatedAt = r.store.touch(comment.UpdatedAt)
	return copyComment(comment), nil
}

func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := r.st.comments[id]; !ok {
		return custom_errors.ErrCommentNotFound
	}
	delete(r.st.comments, id)
	return nil
}

func (r *CommentRepository) List(ctx context.Context, filters model.CommentFilters) ([]*model.Comment, int64, error) {
	matched := r.sorted(func(c *model.Comment) bool {
		return filters.PostID == nil || c.PostID == *filters.PostID
	})
	page := paginate(matched, filters.PageRequest)
	result := make([]*model.Comment, 0, len(page))
	for _, c := range page {
		result = append(result, copyComment(c))
	}
	return result, int64(len(matched)), nil
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error) {
	matched := r.sorted(func(c *model.Comment) bool { return c.PostID == postID })
	result := make([]*model.Comment, 0, len(matched))
	for _, c := range matched {
		result = append(result, copyComment(c))
	}
	return result, nil
}

func (r *CommentRepository) sorted(keep func(*model.Comment) bool) []*model.Comment {
	matched := make([]*model.Comment, 0, len(r.st.comments))
	for _, c := range r.st.comments {
		if keep(c) {
			matched = append(matched, c)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})
	return matched
}
