package delivery_http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogsite-service/internal/application/cachekey"
	comment_service "blogsite-service/internal/application/service/comment"
	post_service "blogsite-service/internal/application/service/post"
	"blogsite-service/internal/application/validation"
	model "blogsite-service/internal/domain/models"
	delivery_http "blogsite-service/internal/infrastructure/inbound/http"
	"blogsite-service/internal/infrastructure/logger"
	memory_cache "blogsite-service/internal/infrastructure/outbound/cache/memory"
	"blogsite-service/internal/infrastructure/outbound/metrics/prometheus"
	"blogsite-service/internal/infrastructure/outbound/repository/memory"
)

type envelope struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	Data       json.RawMessage   `json:"data"`
	Pagination *model.Pagination `json:"pagination"`
	Error      string            `json:"error"`
}

type testAPI struct {
	t       *testing.T
	handler http.Handler
}

func newTestAPI(t *testing.T, basePath string) *testAPI {
	t.Helper()
	log := logger.New("test")
	metrics := prometheus.NewPrometheusMetricsProvider()
	validator := validation.New()

	uow := memory.NewUnitOfWork(memory.NewStore(), log)
	listingCache := memory_cache.NewCache(100, log, metrics)
	keys := cachekey.NewBuilder("blog")

	posts := post_service.NewPostServiceCacheDecorator(
		post_service.NewPostService(uow, validator, log, metrics), listingCache, keys, time.Minute, log)
	comments := comment_service.NewCommentServiceCacheDecorator(
		comment_service.NewCommentService(uow, validator, log, metrics), listingCache, keys, time.Minute, log)

	handler := delivery_http.NewRouter(delivery_http.RouterConfig{
		BasePath:    basePath,
		CORSOrigins: []string{"http://localhost:3000"},
	}, posts, comments, log, metrics)

	return &testAPI{t: t, handler: handler}
}

func (a *testAPI) do(method, path, body string) (int, envelope) {
	a.t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)

	var env envelope
	require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func dataField[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

type postBody struct {
	ID           int64            `json:"id"`
	Title        string           `json:"title"`
	CommentCount int64            `json:"comment_count"`
	Comments     []map[string]any `json:"comments"`
	CreatedAt    string           `json:"created_at"`
}

type commentBody struct {
	ID     int64 `json:"id"`
	PostID int64 `json:"post_id"`
	Rating *int  `json:"rating"`
}

func TestRouter_PostCommentLifecycle(t *testing.T) {
	api := newTestAPI(t, "")

	code, env := api.do(http.MethodPost, "/posts", `{"title":"Hi","content":"World","author":"A"}`)
	require.Equal(t, http.StatusCreated, code)
	post := dataField[postBody](t, env)
	assert.Equal(t, int64(1), post.ID)
	assert.Equal(t, int64(0), post.CommentCount)
	assert.True(t, strings.HasSuffix(post.CreatedAt, "+00:00"))

	code, env = api.do(http.MethodPost, "/comments", `{"post_id":1,"author":"B","content":"Nice!","rating":5}`)
	require.Equal(t, http.StatusCreated, code)
	comment := dataField[commentBody](t, env)
	require.NotNil(t, comment.Rating)
	assert.Equal(t, 5, *comment.Rating)

	code, env = api.do(http.MethodGet, "/posts/1", "")
	require.Equal(t, http.StatusOK, code)
	post = dataField[postBody](t, env)
	assert.Len(t, post.Comments, 1)
	assert.Equal(t, int64(1), post.CommentCount)

	code, env = api.do(http.MethodDelete, "/posts/1", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Post deleted successfully", env.Message)

	code, env = api.do(http.MethodGet, "/comments?post_id=1", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Success)
	assert.Equal(t, "Post not found", env.Error)

	code, _ = api.do(http.MethodGet, "/comments/1", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRouter_RatingOutOfRange(t *testing.T) {
	api := newTestAPI(t, "")

	code, _ := api.do(http.MethodPost, "/posts", `{"title":"Hi","content":"World","author":"A"}`)
	require.Equal(t, http.StatusCreated, code)

	code, env := api.do(http.MethodPost, "/comments", `{"post_id":1,"author":"B","content":"Nice!","rating":6}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Error, "Rating must be an integer between 1 and 5")

	code, env = api.do(http.MethodGet, "/comments", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(0), env.Pagination.Total)
}

func TestRouter_ListingSeesWritesThroughCache(t *testing.T) {
	api := newTestAPI(t, "")

	api.do(http.MethodPost, "/posts", `{"title":"Go tips","content":"x","author":"A"}`)

	code, env := api.do(http.MethodGet, "/posts", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(1), env.Pagination.Total)

	api.do(http.MethodPost, "/posts", `{"title":"Rust tips","content":"y","author":"A"}`)

	_, env = api.do(http.MethodGet, "/posts", "")
	assert.Equal(t, int64(2), env.Pagination.Total)
	posts := dataField[[]postBody](t, env)
	require.Len(t, posts, 2)
	assert.Equal(t, "Rust tips", posts[0].Title)

	_, env = api.do(http.MethodGet, "/posts?search=go", "")
	assert.Equal(t, int64(1), env.Pagination.Total)

	api.do(http.MethodPost, "/comments", `{"post_id":1,"author":"B","content":"c"}`)
	_, env = api.do(http.MethodGet, "/posts?search=go", "")
	posts = dataField[[]postBody](t, env)
	require.Len(t, posts, 1)
	assert.Equal(t, int64(1), posts[0].CommentCount)

	_, env = api.do(http.MethodGet, "/comments/post/1", "")
	assert.Equal(t, int64(1), env.Pagination.Total)

	api.do(http.MethodDelete, "/posts/1", "")
	_, env = api.do(http.MethodGet, "/comments", "")
	assert.Equal(t, int64(0), env.Pagination.Total)
}

func TestRouter_UpdateAndValidation(t *testing.T) {
	api := newTestAPI(t, "")

	api.do(http.MethodPost, "/posts", `{"title":"Hi","content":"World","author":"A"}`)

	code, env := api.do(http.MethodPut, "/posts/1", `{}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "No fields to update", env.Error)

	code, env = api.do(http.MethodPut, "/posts/1", `{"title":"   "}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Title cannot be empty", env.Error)

	code, env = api.do(http.MethodPut, "/posts/1", `{"title":"Renamed"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Renamed", dataField[postBody](t, env).Title)

	code, env = api.do(http.MethodPost, "/posts", `{"content":"x","author":"A"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Title is required", env.Error)

	code, env = api.do(http.MethodPost, "/posts", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid JSON body", env.Error)

	code, _ = api.do(http.MethodPut, "/posts/42", `{"title":"x"}`)
	assert.Equal(t, http.StatusNotFound, code)

	api.do(http.MethodPost, "/comments", `{"post_id":1,"author":"B","content":"c","rating":3}`)
	code, env = api.do(http.MethodPut, "/comments/1", `{"rating":null}`)
	require.Equal(t, http.StatusOK, code)
	assert.Nil(t, dataField[commentBody](t, env).Rating)

	code, env = api.do(http.MethodGet, "/comments/1", "")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"post":{"id":1,"title":"Renamed","author":"A"}`)
}

func TestRouter_FallbackHandlers(t *testing.T) {
	api := newTestAPI(t, "")

	code, env := api.do(http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Resource not found", env.Error)

	code, env = api.do(http.MethodPatch, "/posts/1", "")
	assert.Equal(t, http.StatusMethodNotAllowed, code)
	assert.Equal(t, "Method not allowed", env.Error)

	code, _ = api.do(http.MethodGet, "/posts/abc", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRouter_IndexAndHealth(t *testing.T) {
	api := newTestAPI(t, "/api/")

	rec := httptest.NewRecorder()
	api.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	api.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"message": "Blogsite API",
		"version": "1.0.0",
		"endpoints": {"posts": "/api/posts", "comments": "/api/comments"}
	}`, rec.Body.String())

	code, _ := api.do(http.MethodGet, "/api/posts", "")
	assert.Equal(t, http.StatusOK, code)

	code, _ = api.do(http.MethodGet, "/posts", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRouter_CORS(t *testing.T) {
	api := newTestAPI(t, "")

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	api.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_HugePageIsEmpty(t *testing.T) {
	api := newTestAPI(t, "")

	api.do(http.MethodPost, "/posts", `{"title":"Hi","content":"World","author":"A"}`)
	api.do(http.MethodPost, "/comments", `{"post_id":1,"author":"B","content":"c"}`)

	for _, path := range []string{
		"/posts?page=9223372036854775807",
		"/posts?page=9223372036854775807&per_page=100",
		"/comments?page=9223372036854775807",
		"/comments/post/1?page=9223372036854775807",
	} {
		t.Run(path, func(t *testing.T) {
			code, env := api.do(http.MethodGet, path, "")
			require.Equal(t, http.StatusOK, code)
			assert.True(t, env.Success)
			assert.JSONEq(t, `[]`, string(env.Data))
			require.NotNil(t, env.Pagination)
			assert.Equal(t, int64(1), env.Pagination.Total)
			assert.False(t, env.Pagination.HasNext)
			assert.True(t, env.Pagination.HasPrev)
		})
	}
}
