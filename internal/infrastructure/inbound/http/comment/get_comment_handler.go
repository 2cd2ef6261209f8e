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

type CommentGetter interface {
	GetComment(ctx context.Context, id int64) (*model.Comment, error)
}

type GetCommentHandler struct {
	commentService CommentGetter
	log            ports.Logger
}

func NewGetCommentHandler(commentService CommentGetter, log ports.Logger) *GetCommentHandler {
	return &GetCommentHandler{
		commentService: commentService,
		log:            log,
	}
}

func (h *GetCommentHandler) GetComment(w http.ResponseWriter, r *http.Request) {
	id, ok := request.PathID(r, "id")
	if !ok {
		response.Error(w, h.log, custom_errors.ErrCommentNotFound)
		return
	}

	h.log.Debug("Received GetComment request", slog.Int64("comment_id", id))

	comment, err := h.commentService.GetComment(r.Context(), id)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.Success(w, http.StatusOK, response.NewCommentWithPost(comment))
}
