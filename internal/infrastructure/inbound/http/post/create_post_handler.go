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

type PostCreator interface {
	CreatePost(ctx context.Context, dto *model.CreatePostDTO) (*model.Post, error)
}

type CreatePostHandler struct {
	postService PostCreator
	log         ports.Logger
}

func NewCreatePostHandler(postService PostCreator, log ports.Logger) *CreatePostHandler {
	return &CreatePostHandler{
		postService: postService,
		log:         log,
	}
}

func (h *CreatePostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var dto model.CreatePostDTO
	if err := request.DecodeJSON(r, &dto); err != nil {
		h.log.Debug("Invalid CreatePost body", slog.String("error", err.Error()))
		response.Error(w, h.log, err)
		return
	}

	post, err := h.postService.CreatePost(r.Context(), &dto)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.Debug("Successfully created post", slog.Int64("post_id", post.ID))
	response.SuccessMessage(w, http.StatusCreated, "Post created successfully", response.NewPost(post))
}
