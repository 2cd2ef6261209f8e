package delivery_http

import (
	"net/http"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	comment_service "blogsite-service/internal/domain/ports/input/comment"
	post_service "blogsite-service/internal/domain/ports/input/post"
	ports "blogsite-service/internal/domain/ports/output"
	comment_http "blogsite-service/internal/infrastructure/inbound/http/comment"
	"blogsite-service/internal/infrastructure/inbound/http/middleware"
	post_http "blogsite-service/internal/infrastructure/inbound/http/post"
	"blogsite-service/internal/infrastructure/inbound/http/response"
)

const apiVersion = "1.0.0"

type RouterConfig struct {
	BasePath    string
	CORSOrigins []string
}

// NewRouter wires the post and comment APIs under cfg.BasePath together with
// the index, health, 404 and 405 handlers.
func NewRouter(
	cfg RouterConfig,
	postService post_service.Service,
	commentService comment_service.Service,
	log ports.Logger,
	metrics ports.MetricsProvider,
) http.Handler {
	basePath := "/" + strings.Trim(cfg.BasePath, "/")
	if basePath == "/" {
		basePath = ""
	}

	chain := []mux.MiddlewareFunc{
		middleware.Logger(log),
		middleware.Metrics(metrics),
		middleware.Recovery(log),
	}

	router := mux.NewRouter()
	router.Use(chain...)

	router.HandleFunc("/", index(basePath)).Methods(http.MethodGet)
	router.HandleFunc("/health", health).Methods(http.MethodGet)

	post_http.NewPostAPI(postService, log).Register(router.PathPrefix(basePath + "/posts").Subrouter())
	comment_http.NewCommentAPI(commentService, log).Register(router.PathPrefix(basePath + "/comments").Subrouter())

	router.NotFoundHandler = applyChain(http.HandlerFunc(notFound), chain)
	router.MethodNotAllowedHandler = applyChain(http.HandlerFunc(methodNotAllowed), chain)

	return handlers.CORS(
		handlers.AllowedOrigins(cfg.CORSOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(router)
}

// applyChain is used for handlers mux invokes without running router middleware.
func applyChain(h http.Handler, chain []mux.MiddlewareFunc) http.Handler {
	for i := len(chain) - 1; i >= 0; i-- {
		h = chain[i].Middleware(h)
	}
	return h
}

func index(basePath string) http.HandlerFunc {
	body := map[string]any{
		"message": "Blogsite API",
		"version": apiVersion,
		"endpoints": map[string]string{
			"posts":    basePath + "/posts",
			"comments": basePath + "/comments",
		},
	}
	return func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, body)
	}
}

func health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func notFound(w http.ResponseWriter, r *http.Request) {
	response.Fail(w, http.StatusNotFound, response.MsgResourceNotFound)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	response.Fail(w, http.StatusMethodNotAllowed, response.MsgMethodNotAllowed)
}
