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

type CommentUpdater interface {
	UpdateComment(ctx context.Context, id int64, dto *model.UpdateCommentDTO) (*model.Comment, error)
}

type UpdateCommentHandler struct {
	commentService CommentUpdater
	log            ports.Logger
}

func NewUpdateCommentHandler(commentService CommentUpdater, log ports.Logger) *UpdateCommentHandler {
	return &UpdateCommentHandler{
		commentService: commentService,
		log:            log,
	}
}

func (h *UpdateCommentHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	id, ok := request.PathID(r, "id")
	if !ok {
		response.Error(w, h.log, custom_errors.ErrCommentNotFound)
		return
	}

	var dto model.UpdateCommentDTO
	if err := request.DecodeJSON(r, &dto); err != nil {
		h.log.Debug("Invalid UpdateComment body", slog.Int64("comment_id", id), slog.String("error", err.Error()))
		response.Error(w, h.log, err)
		return
	}

	comment, err := h.commentService.UpdateComment(r.Context(), id, &dto)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.Debug("Successfully updated comment", slog.Int64("comment_id", id))
	response.SuccessMessage(w, http.StatusOK, "Comment updated successfully", response.NewComment(comment))
}
