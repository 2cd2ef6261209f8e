package post_http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blogsite-service/internal/custom_errors"
	model "blogsite-service/internal/domain/models"
	post_http "blogsite-service/internal/infrastructure/inbound/http/post"
	"blogsite-service/internal/infrastructure/logger"
	mockpost "blogsite-service/mocks/post"
)

type envelope struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	Data       json.RawMessage   `json:"data"`
	Pagination *model.Pagination `json:"pagination"`
	Error      string            `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func withID(r *http.Request, id string) *http.Request {
	return mux.SetURLVars(r, map[string]string{"id": id})
}

func samplePost(id int64) *model.Post {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	return &model.Post{
		ID:        id,
		Title:     "Hello",
		Content:   "World",
		Author:    "alice",
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

func TestListPostsHandler_ListPosts(t *testing.T) {
	testLogger := logger.New("test")

	t.Run("Success", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewListPostsHandler(mockPostService, testLogger)

		filters := model.PostFilters{Search: "go", PageRequest: model.PageRequest{Page: 2, PerPage: 5}}
		page := &model.PostPage{
			Items:      []*model.Post{samplePost(6)},
			Pagination: model.NewPagination(filters.PageRequest, 6),
		}
		mockPostService.On("ListPosts", mock.Anything, filters).Return(page, nil)

		rec := httptest.NewRecorder()
		handler.ListPosts(rec, httptest.NewRequest(http.MethodGet, "/posts?search=go&page=2&per_page=5", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		env := decode(t, rec)
		assert.True(t, env.Success)
		require.NotNil(t, env.Pagination)
		assert.Equal(t, 2, env.Pagination.Pages)
		assert.False(t, env.Pagination.HasNext)
		assert.True(t, env.Pagination.HasPrev)

		var posts []map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &posts))
		require.Len(t, posts, 1)
		assert.Equal(t, "2024-01-02T03:04:05+00:00", posts[0]["created_at"])
		mockPostService.AssertExpectations(t)
	})

	t.Run("Bad paging falls back to defaults", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewListPostsHandler(mockPostService, testLogger)

		filters := model.PostFilters{PageRequest: model.PageRequest{Page: 1, PerPage: model.DefaultPostsPerPage}}
		mockPostService.On("ListPosts", mock.Anything, filters).
			Return(&model.PostPage{Items: []*model.Post{}, Pagination: model.NewPagination(filters.PageRequest, 0)}, nil)

		rec := httptest.NewRecorder()
		handler.ListPosts(rec, httptest.NewRequest(http.MethodGet, "/posts?page=x&per_page=500", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		env := decode(t, rec)
		assert.JSONEq(t, `[]`, string(env.Data))
		assert.Equal(t, 0, env.Pagination.Pages)
	})

	t.Run("Service error", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewListPostsHandler(mockPostService, testLogger)
		mockPostService.On("ListPosts", mock.Anything, mock.Anything).Return(nil, custom_errors.ErrDatabaseQuery)

		rec := httptest.NewRecorder()
		handler.ListPosts(rec, httptest.NewRequest(http.MethodGet, "/posts", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		env := decode(t, rec)
		assert.False(t, env.Success)
		assert.Equal(t, "Internal server error", env.Error)
	})
}

func TestGetPostHandler_GetPost(t *testing.T) {
	testLogger := logger.New("test")

	t.Run("Success with comments", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewGetPostHandler(mockPostService, testLogger)

		post := samplePost(1)
		rating := 5
		post.CommentCount = 1
		post.Comments = []*model.Comment{{ID: 3, PostID: 1, Author: "bob", Content: "Nice", Rating: &rating, CreatedAt: post.CreatedAt, UpdatedAt: post.UpdatedAt}}
		mockPostService.On("GetPost", mock.Anything, int64(1)).Return(post, nil)

		rec := httptest.NewRecorder()
		handler.GetPost(rec, withID(httptest.NewRequest(http.MethodGet, "/posts/1", nil), "1"))

		assert.Equal(t, http.StatusOK, rec.Code)
		var data struct {
			ID           int64            `json:"id"`
			CommentCount int64            `json:"comment_count"`
			Comments     []map[string]any `json:"comments"`
		}
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))
		assert.Equal(t, int64(1), data.ID)
		assert.Equal(t, int64(1), data.CommentCount)
		require.Len(t, data.Comments, 1)
		assert.Equal(t, float64(5), data.Comments[0]["rating"])
	})

	t.Run("Not found", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewGetPostHandler(mockPostService, testLogger)
		mockPostService.On("GetPost", mock.Anything, int64(9)).Return(nil, custom_errors.ErrPostNotFound)

		rec := httptest.NewRecorder()
		handler.GetPost(rec, withID(httptest.NewRequest(http.MethodGet, "/posts/9", nil), "9"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Post not found", decode(t, rec).Error)
	})

	t.Run("Overflowing id", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewGetPostHandler(mockPostService, testLogger)

		rec := httptest.NewRecorder()
		handler.GetPost(rec, withID(httptest.NewRequest(http.MethodGet, "/posts/1", nil), "99999999999999999999"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		mockPostService.AssertNotCalled(t, "GetPost", mock.Anything, mock.Anything)
	})
}

func TestCreatePostHandler_CreatePost(t *testing.T) {
	testLogger := logger.New("test")

	t.Run("Success", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewCreatePostHandler(mockPostService, testLogger)

		mockPostService.On("CreatePost", mock.Anything, mock.MatchedBy(func(dto *model.CreatePostDTO) bool {
			return dto.Title.Value == "Hello" && dto.Content.Value == "World" && dto.Author.Value == "alice"
		})).Return(samplePost(1), nil)

		body := `{"title":"Hello","content":"World","author":"alice"}`
		rec := httptest.NewRecorder()
		handler.CreatePost(rec, httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(body)))

		assert.Equal(t, http.StatusCreated, rec.Code)
		env := decode(t, rec)
		assert.True(t, env.Success)
		assert.Equal(t, "Post created successfully", env.Message)
		assert.JSONEq(t, `{
			"id": 1, "title": "Hello", "content": "World", "author": "alice",
			"created_at": "2024-01-02T03:04:05+00:00", "updated_at": "2024-01-02T03:04:05+00:00",
			"comment_count": 0
		}`, string(env.Data))
	})

	t.Run("Empty body", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewCreatePostHandler(mockPostService, testLogger)

		rec := httptest.NewRecorder()
		handler.CreatePost(rec, httptest.NewRequest(http.MethodPost, "/posts", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Request body is required", decode(t, rec).Error)
		mockPostService.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewCreatePostHandler(mockPostService, testLogger)

		rec := httptest.NewRecorder()
		handler.CreatePost(rec, httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(`{"title":`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid JSON body", decode(t, rec).Error)
	})

	t.Run("Validation error", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewCreatePostHandler(mockPostService, testLogger)
		mockPostService.On("CreatePost", mock.Anything, mock.Anything).
			Return(nil, custom_errors.NewValidationError("Title is required"))

		rec := httptest.NewRecorder()
		handler.CreatePost(rec, httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(`{"content":"x"}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Title is required", decode(t, rec).Error)
	})
}

func TestUpdatePostHandler_UpdatePost(t *testing.T) {
	testLogger := logger.New("test")

	t.Run("Success", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewUpdatePostHandler(mockPostService, testLogger)

		updated := samplePost(4)
		updated.Title = "Renamed"
		mockPostService.On("UpdatePost", mock.Anything, int64(4), mock.MatchedBy(func(dto *model.UpdatePostDTO) bool {
			return dto.Title.Present() && dto.Title.Value == "Renamed" && !dto.Content.Set
		})).Return(updated, nil)

		rec := httptest.NewRecorder()
		req := withID(httptest.NewRequest(http.MethodPut, "/posts/4", strings.NewReader(`{"title":"Renamed"}`)), "4")
		handler.UpdatePost(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "Post updated successfully", env.Message)
		assert.Contains(t, string(env.Data), `"title":"Renamed"`)
	})

	t.Run("Not found", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewUpdatePostHandler(mockPostService, testLogger)
		mockPostService.On("UpdatePost", mock.Anything, int64(4), mock.Anything).Return(nil, custom_errors.ErrPostNotFound)

		rec := httptest.NewRecorder()
		req := withID(httptest.NewRequest(http.MethodPut, "/posts/4", strings.NewReader(`{"title":"Renamed"}`)), "4")
		handler.UpdatePost(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Null body", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewUpdatePostHandler(mockPostService, testLogger)

		rec := httptest.NewRecorder()
		req := withID(httptest.NewRequest(http.MethodPut, "/posts/4", strings.NewReader(`null`)), "4")
		handler.UpdatePost(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Request body is required", decode(t, rec).Error)
	})
}

func TestDeletePostHandler_DeletePost(t *testing.T) {
	testLogger := logger.New("test")

	t.Run("Success", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewDeletePostHandler(mockPostService, testLogger)
		mockPostService.On("DeletePost", mock.Anything, int64(2)).Return(nil)

		rec := httptest.NewRecorder()
		handler.DeletePost(rec, withID(httptest.NewRequest(http.MethodDelete, "/posts/2", nil), "2"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"message":"Post deleted successfully"}`, rec.Body.String())
	})

	t.Run("Unexpected error", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewDeletePostHandler(mockPostService, testLogger)
		mockPostService.On("DeletePost", mock.Anything, int64(2)).Return(errors.New("boom"))

		rec := httptest.NewRecorder()
		handler.DeletePost(rec, withID(httptest.NewRequest(http.MethodDelete, "/posts/2", nil), "2"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "boom")
	})
}
