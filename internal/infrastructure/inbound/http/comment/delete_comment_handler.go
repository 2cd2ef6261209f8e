package comment_http

import (
	"context"
	"log/slog"
	"net/http"

	"blogsite-service/internal/custom_errors"
	ports "blogsite-service/internal/domain/ports/output"
	"blogsite-service/internal/infrastructure/inbound/http/request"
	"blogsite-service/internal/infrastructure/inbound/http/response"
)

type CommentDeleter interface {
	DeleteComment(ctx context.Context, id int64) error
}

type DeleteCommentHandler struct {
	commentService CommentDeleter
	log            ports.Logger
}

func NewDeleteCommentHandler(commentService CommentDeleter, log ports.Logger) *DeleteCommentHandler {
	return &DeleteCommentHandler{
		commentService: commentService,
		log:            log,
	}
}

func (h *DeleteCommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, ok := request.PathID(r, "id")
	if !ok {
		response.Error(w, h.log, custom_errors.ErrCommentNotFound)
		return
	}

	if err := h.commentService.DeleteComment(r.Context(), id); err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.Debug("Successfully deleted comment", slog.Int64("comment_id", id))
	response.SuccessMessage(w, http.StatusOK, "Comment deleted successfully", nil)
}
