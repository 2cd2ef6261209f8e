package memory

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"blogsite-service/internal/custom_errors"
	model "blogsite-service/internal/domain/models"
	ports "blogsite-service/internal/domain/ports/output"
)

type PostRepository struct {
	store *Store
	st    *state
	log   ports.Logger
}

func (p *PostRepository) withCount(post *model.Post) *model.Post {
	result := *post
	result.CommentCount = p.st.commentCount(post.ID)
	return &result
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	p.log.Debug("Creating new post (memory impl)", slog.String("author", post.Author), slog.String("title", post.Title))

	now := p.store.timestamp()
	created := &model.Post{
		ID:        p.st.nextPostID,
		Title:     post.Title,
		Content:   post.Content,
		Author:    post.Author,
		CreatedAt: now,
		UpdatedAt: now,
	}
	p.st.nextPostID++
	p.st.posts[created.ID] = created

	return p.withCount(created), nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	post, ok := p.st.posts[id]
	if !ok {
		p.log.Debug("Post not found by id (memory impl)", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}
	return p.withCount(post), nil
}

func (p *PostRepository) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := p.st.posts[id]
	return ok, nil
}

func (p *PostRepository) Update(ctx context.Context, id int64, update *model.PostUpdate) (*model.Post, error) {
	post, ok := p.st.posts[id]
	if !ok {
		return nil, custom_errors.ErrPostNotFound
	}
	if update.Title != nil {
		post.Title = *update.Title
	}
	if update.Content != nil {
		post.Content = *update.Content
	}
	if update.Author != nil {
		post.Author = *update.Author
	}
	post.UpdatedAt = p.store.touch(post.UpdatedAt)
	return p.withCount(post), nil
}

func (p *PostRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := p.st.posts[id]; !ok {
		return custom_errors.ErrPostNotFound
	}
	delete(p.st.posts, id)
	for commentID, c := range p.st.comments {
		if c.PostID == id {
			delete(p.st.comments, commentID)
		}
	}
	p.log.Debug("Deleted post with its comments (memory impl)", slog.Int64("id", id))
	return nil
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]*model.Post, int64, error) {
	search := strings.ToLower(strings.TrimSpace(filters.Search))

	matched := make([]*model.Post, 0, len(p.st.posts))
	for _, post := range p.st.posts {
		if search != "" &&
			!strings.Contains(strings.ToLower(post.Title), search) &&
			!strings.Contains(strings.ToLower(post.Content), search) &&
			!strings.Contains(strings.ToLower(post.Author), search) {
			continue
		}
		matched = append(matched, post)
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	total := int64(len(matched))
	page := paginate(matched, filters.PageRequest)
	result := make([]*model.Post, 0, len(page))
	for _, post := range page {
		result = append(result, p.withCount(post))
	}
	return result, total, nil
}

func paginate[T any](items []T, req model.PageRequest) []T {
	offset := req.Offset()
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + req.PerPage
	if end > len(items) || end < offset {
		end = len(items)
	}
	return items[offset:end]
}
