package comment_http

import (
	"net/http"

	"github.com/gorilla/mux"

	comment_service "blogsite-service/internal/domain/ports/input/comment"
	ports "blogsite-service/internal/domain/ports/output"
)

type CommentAPI struct {
	listCommentsHandler  *ListCommentsHandler
	getCommentHandler    *GetCommentHandler
	createCommentHandler *CreateCommentHandler
	updateCommentHandler *UpdateCommentHandler
	deleteCommentHandler *DeleteCommentHandler
}

func NewCommentAPI(commentService comment_service.Service, log ports.Logger) *CommentAPI {
	return &CommentAPI{
		listCommentsHandler:  NewListCommentsHandler(commentService, log),
		getCommentHandler:    NewGetCommentHandler(commentService, log),
		createCommentHandler: NewCreateCommentHandler(commentService, log),
		updateCommentHandler: NewUpdateCommentHandler(commentService, log),
		deleteCommentHandler: NewDeleteCommentHandler(commentService, log),
	}
}

// Register mounts the comment routes on r, which is expected to be rooted at /comments.
func (a *CommentAPI) Register(r *mux.Router) {
	r.HandleFunc("", a.listCommentsHandler.ListComments).Methods(http.MethodGet)
	r.HandleFunc("", a.createCommentHandler.CreateComment).Methods(http.MethodPost)
	r.HandleFunc("/post/{id:[0-9]+}", a.listCommentsHandler.ListPostComments).Methods(http.MethodGet)
	r.HandleFunc("/{id:[0-9]+}", a.getCommentHandler.GetComment).Methods(http.MethodGet)
	r.HandleFunc("/{id:[0-9]+}", a.updateCommentHandler.UpdateComment).Methods(http.MethodPut)
	r.HandleFunc("/{id:[0-9]+}", a.deleteCommentHandler.DeleteComment).Methods(http.MethodDelete)
}
