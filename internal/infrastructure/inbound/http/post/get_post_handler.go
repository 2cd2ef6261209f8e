package post_http

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

type PostGetter interface {
	GetPost(ctx context.Context, id int64) (*model.Post, error)
}

type GetPostHandler struct {
	postService PostGetter
	log         ports.Logger
}

func NewGetPostHandler(postService PostGetter, log ports.Logger) *GetPostHandler {
	return &GetPostHandler{
		postService: postService,
		log:         log,
	}
}

func (h *GetPostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := request.PathID(r, "id")
	if !ok {
		response.Error(w, h.log, custom_errors.ErrPostNotFound)
		return
	}

	h.log.Debug("Received GetPost request", slog.Int64("post_id", id))

	post, err := h.postService.GetPost(r.Context(), id)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.Debug("Successfully got post",
		slog.Int64("post_id", post.ID),
		slog.Int("comments_count", len(post.Comments)))
	response.Success(w, http.StatusOK, response.NewPostWithComments(post))
}
