package post_http

import (
	"context"
	"log/slog"
	"net/http"

	"blogsite-service/internal/custom_errors"
	ports "blogsite-service/internal/domain/ports/output"
	"blogsite-service/internal/infrastructure/inbound/http/request"
	"blogsite-service/internal/infrastructure/inbound/http/response"
)

type PostDeleter interface {
	DeletePost(ctx context.Context, id int64) error
}

type DeletePostHandler struct {
	postService PostDeleter
	log         ports.Logger
}

func NewDeletePostHandler(postService PostDeleter, log ports.Logger) *DeletePostHandler {
	return &DeletePostHandler{
		postService: postService,
		log:         log,
	}
}

func (h *DeletePostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := request.PathID(r, "id")
	if !ok {
		response.Error(w, h.log, custom_errors.ErrPostNotFound)
		return
	}

	h.log.Debug("Received DeletePost request", slog.Int64("post_id", id))

	if err := h.postService.DeletePost(r.Context(), id); err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.Debug("Successfully deleted post", slog.Int64("post_id", id))
	response.SuccessMessage(w, http.StatusOK, "Post deleted successfully", nil)
}
