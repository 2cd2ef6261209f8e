package comment_http

import (
	"context"
	"log/slog"
	"net/http"

	model "blogsite-service/internal/domain/models"
	ports "blogsite-service/internal/domain/ports/output"
	"blogsite-service/internal/infrastructure/inbound/http/request"
	"blogsite-service/internal/infrastructure/inbound/http/response"
)

type CommentCreator interface {
	CreateComment(ctx context.Context, dto *model.CreateCommentDTO) (*model.Comment, error)
}

type CreateCommentHandler struct {
	commentService CommentCreator
	log            ports.Logger
}

func NewCreateCommentHandler(commentService CommentCreator, log ports.Logger) *CreateCommentHandler {
	return &CreateCommentHandler{
		commentService: commentService,
		log:            log,
	}
}

func (h *CreateCommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	var dto model.CreateCommentDTO
	if err := request.DecodeJSON(r, &dto); err != nil {
		h.log.Debug("Invalid CreateComment body", slog.String("error", err.Error()))
		response.Error(w, h.log, err)
		return
	}

	comment, err := h.commentService.CreateComment(r.Context(), &dto)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.Debug("Successfully created comment",
		slog.Int64("comment_id", comment.ID),
		slog.Int64("post_id", comment.PostID))
	response.SuccessMessage(w, http.StatusCreated, "Comment created successfully", response.NewComment(comment))
}
