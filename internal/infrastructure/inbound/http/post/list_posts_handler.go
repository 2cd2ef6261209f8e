package post_http

import (
	"context"
	"log/slog"
	"net/http"

	model "blogsite-service/internal/domain/models"
	ports "blogsite-service/internal/domain/ports/output"
	"blogsite-service/internal/infrastructure/inbound/http/request"
	"blogsite-service/internal/infrastructure/inbound/http/response"
)

type PostLister interface {
	ListPosts(ctx context.Context, filters model.PostFilters) (*model.PostPage, error)
}

type ListPostsHandler struct {
	postService PostLister
	log         ports.Logger
}

func NewListPostsHandler(postService PostLister, log ports.Logger) *ListPostsHandler {
	return &ListPostsHandler{
		postService: postService,
		log:         log,
	}
}

func (h *ListPostsHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	filters := model.PostFilters{
		Search:      r.URL.Query().Get("search"),
		PageRequest: request.PageRequest(r, model.DefaultPostsPerPage),
	}

	h.log.Debug("Received ListPosts request",
		slog.String("search", filters.Search),
		slog.Int("page", filters.Page),
		slog.Int("per_page", filters.PerPage))

	page, err := h.postService.ListPosts(r.Context(), filters)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.Debug("Successfully listed posts",
		slog.Int("count", len(page.Items)),
		slog.Int64("total", page.Pagination.Total))
	response.Page(w, response.NewPosts(page.Items), page.Pagination)
}
