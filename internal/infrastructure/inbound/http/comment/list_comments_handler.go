package comment_http

import (
	"context"
	"log/slog"
	"net/http"

	"blogsite-service/internal/custom_errors"
	model "blogsite-service/internal/domain/models"
	ports "blogsite-service/internal/domain/ports/output"
	"blogsite-service/internal/infrastructure/inbound/http/request"
	"blogsite-service/internal/infrastructure/inbound/http/response"
)

type CommentLister interface {
	ListComments(ctx context.Context, filters model.CommentFilters) (*model.CommentPage, error)
}

type ListCommentsHandler struct {
	commentService CommentLister
	log            ports.Logger
}

func NewListCommentsHandler(commentService CommentLister, log ports.Logger) *ListCommentsHandler {
	return &ListCommentsHandler{
		commentService: commentService,
		log:            log,
	}
}

// ListComments serves GET /comments with an optional post_id query filter.
func (h *ListCommentsHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, request.OptionalID(r, "post_id"))
}

// ListPostComments serves GET /comments/post/{id}.
func (h *ListCommentsHandler) ListPostComments(w http.ResponseWriter, r *http.Request) {
	postID, ok := request.PathID(r, "id")
	if !ok {
		response.Error(w, h.log, custom_errors.ErrPostNotFound)
		return
	}
	h.list(w, r, &postID)
}

func (h *ListCommentsHandler) list(w http.ResponseWriter, r *http.Request, postID *int64) {
	filters := model.CommentFilters{
		PostID:      postID,
		PageRequest: request.PageRequest(r, model.DefaultCommentsPerPage),
	}

	attrs := []any{slog.Int("page", filters.Page), slog.Int("per_page", filters.PerPage)}
	if postID != nil {
		attrs = append(attrs, slog.Int64("post_id", *postID))
	}
	h.log.Debug("Received ListComments request", attrs...)

	page, err := h.commentService.ListComments(r.Context(), filters)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.Debug("Successfully listed comments",
		slog.Int("count", len(page.Items)),
		slog.Int64("total", page.Pagination.Total))
	response.Page(w, response.NewComments(page.Items), page.Pagination)
}
