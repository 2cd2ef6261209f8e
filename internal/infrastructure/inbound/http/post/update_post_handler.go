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

type PostUpdater interface {
	UpdatePost(ctx context.Context, id int64, dto *model.UpdatePostDTO) (*model.Post, error)
}

type UpdatePostHandler struct {
	postService PostUpdater
	log         ports.Logger
}

func NewUpdatePostHandler(postService PostUpdater, log ports.Logger) *UpdatePostHandler {
	return &UpdatePostHandler{
		postService: postService,
		log:         log,
	}
}

func (h *UpdatePostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := request.PathID(r, "id")
	if !ok {
		response.Error(w, h.log, custom_errors.ErrPostNotFound)
		return
	}

	var dto model.UpdatePostDTO
	if err := request.DecodeJSON(r, &dto); err != nil {
		h.log.Debug("Invalid UpdatePost body", slog.Int64("post_id", id), slog.String("error", err.Error()))
		response.Error(w, h.log, err)
		return
	}

	h.log.Debug("Received UpdatePost request",
		slog.Int64("post_id", id),
		slog.Bool("has_title_update", dto.Title.Set),
		slog.Bool("has_content_update", dto.Content.Set),
		slog.Bool("has_author_update", dto.Author.Set))

	post, err := h.postService.UpdatePost(r.Context(), id, &dto)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.Debug("Successfully updated post", slog.Int64("post_id", post.ID))
	response.SuccessMessage(w, http.StatusOK, "Post updated successfully", response.NewPost(post))
}
