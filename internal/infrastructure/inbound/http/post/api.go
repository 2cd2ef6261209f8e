package post_http

import (
	"net/http"

	"github.com/gorilla/mux"

	post_service "blogsite-service/internal/domain/ports/input/post"
	ports "blogsite-service/internal/domain/ports/output"
)

type PostAPI struct {
	listPostsHandler  *ListPostsHandler
	getPostHandler    *GetPostHandler
	createPostHandler *CreatePostHandler
	updatePostHandler *UpdatePostHandler
	deletePostHandler *DeletePostHandler
}

func NewPostAPI(postService post_service.Service, log ports.Logger) *PostAPI {
	return &PostAPI{
		listPostsHandler:  NewListPostsHandler(postService, log),
		getPostHandler:    NewGetPostHandler(postService, log),
		createPostHandler: NewCreatePostHandler(postService, log),
		updatePostHandler: NewUpdatePostHandler(postService, log),
		deletePostHandler: NewDeletePostHandler(postService, log),
	}
}

// Register mounts the post routes on r, which is expected to be rooted at /posts.
func (a *PostAPI) Register(r *mux.Router) {
	r.HandleFunc("", a.listPostsHandler.ListPosts).Methods(http.MethodGet)
	r.HandleFunc("", a.createPostHandler.CreatePost).Methods(http.MethodPost)
	r.HandleFunc("/{id:[0-9]+}", a.getPostHandler.GetPost).Methods(http.MethodGet)
	r.HandleFunc("/{id:[0-9]+}", a.updatePostHandler.UpdatePost).Methods(http.MethodPut)
	r.HandleFunc("/{id:[0-9]+}", a.deletePostHandler.DeletePost).Methods(http.MethodDelete)
}
