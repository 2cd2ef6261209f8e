package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogsite-service/internal/custom_errors"
	model "blogsite-service/internal/domain/models"
)

func requireValidationMessage(t *testing.T, err error, want string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, custom_errors.ErrValidation))
	assert.Equal(t, want, err.Error())
}

func TestValidator_CreatePost(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		dto     model.CreatePostDTO
		want    *model.Post
		wantErr string
	}{
		{
			name: "trims fields",
			dto:  model.CreatePostDTO{Title: model.Some("  Hello "), Content: model.Some(" body "), Author: model.Some("Ann ")},
			want: &model.Post{Title: "Hello", Content: "body", Author: "Ann"},
		},
		{
			name:    "missing title",
			dto:     model.CreatePostDTO{Content: model.Some("body"), Author: model.Some("Ann")},
			wantErr: "Title is required",
		},
		{
			name:    "blank content",
			dto:     model.CreatePostDTO{Title: model.Some("t"), Content: model.Some("   "), Author: model.Some("Ann")},
			wantErr: "Content is required",
		},
		{
			name:    "null author",
			dto:     model.CreatePostDTO{Title: model.Some("t"), Content: model.Some("c"), Author: model.Null[string]()},
			wantErr: "Author is required",
		},
		{
			name:    "title too long",
			dto:     model.CreatePostDTO{Title: model.Some(strings.Repeat("a", 201)), Content: model.Some("c"), Author: model.Some("Ann")},
			wantErr: "Title must be max 200 characters",
		},
		{
			name:    "author too long",
			dto:     model.CreatePostDTO{Title: model.Some("t"), Content: model.Some("c"), Author: model.Some(strings.Repeat("b", 101))},
			wantErr: "Author must be max 100 characters",
		},
		{
			name:    "title not a string",
			dto:     model.CreatePostDTO{Title: model.Optional[string]{Set: true, Invalid: true}, Content: model.Some("c"), Author: model.Some("a")},
			wantErr: "Title must be a string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.CreatePost(&tt.dto)
			if tt.wantErr != "" {
				requireValidationMessage(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidator_TitleLengthCountsCharacters(t *testing.T) {
	v := New()
	title := strings.Repeat("é", model.PostTitleMaxLength)

	got, err := v.CreatePost(&model.CreatePostDTO{Title: model.Some(title), Content: model.Some("c"), Author: model.Some("a")})
	require.NoError(t, err)
	assert.Equal(t, title, got.Title)
}

func TestValidator_UpdatePost(t *testing.T) {
	v := New()

	got, err := v.UpdatePost(&model.UpdatePostDTO{Title: model.Some(" New ")})
	require.NoError(t, err)
	require.NotNil(t, got.Title)
	assert.Equal(t, "New", *got.Title)
	assert.Nil(t, got.Content)
	assert.Nil(t, got.Author)

	_, err = v.UpdatePost(&model.UpdatePostDTO{Title: model.Some("  ")})
	requireValidationMessage(t, err, "Title cannot be empty")

	_, err = v.UpdatePost(&model.UpdatePostDTO{Author: model.Null[string]()})
	requireValidationMessage(t, err, "Author cannot be empty")

	_, err = v.UpdatePost(&model.UpdatePostDTO{Title: model.Some(strings.Repeat("x", 201))})
	requireValidationMessage(t, err, "Title must be max 200 characters")

	_, err = v.UpdatePost(&model.UpdatePostDTO{})
	requireValidationMessage(t, err, "No fields to update")
}

func TestValidator_CreateComment(t *testing.T) {
	v := New()

	tests := []struct {
		name       string
		dto        model.CreateCommentDTO
		wantErr    string
		wantRating *int
	}{
		{
			name: "without rating",
			dto:  model.CreateCommentDTO{PostID: model.Some(int64(1)), Author: model.Some("Bob"), Content: model.Some("Nice")},
		},
		{
			name:       "with rating",
			dto:        model.CreateCommentDTO{PostID: model.Some(int64(1)), Author: model.Some("Bob"), Content: model.Some("Nice"), Rating: model.Some(5)},
			wantRating: func() *int { r := 5; return &r }(),
		},
		{
			name: "null rating",
			dto:  model.CreateCommentDTO{PostID: model.Some(int64(1)), Author: model.Some("Bob"), Content: model.Some("Nice"), Rating: model.Null[int]()},
		},
		{
			name:    "missing post id",
			dto:     model.CreateCommentDTO{Author: model.Some("Bob"), Content: model.Some("Nice")},
			wantErr: "post_id is required and must be an integer",
		},
		{
			name:    "non-integer post id",
			dto:     model.CreateCommentDTO{PostID: model.Optional[int64]{Set: true, Invalid: true}, Author: model.Some("Bob"), Content: model.Some("Nice")},
			wantErr: "post_id is required and must be an integer",
		},
		{
			name:    "zero post id",
			dto:     model.CreateCommentDTO{PostID: model.Some(int64(0)), Author: model.Some("Bob"), Content: model.Some("Nice")},
			wantErr: "post_id is required and must be an integer",
		},
		{
			name:    "rating too high",
			dto:     model.CreateCommentDTO{PostID: model.Some(int64(1)), Author: model.Some("Bob"), Content: model.Some("Nice"), Rating: model.Some(6)},
			wantErr: "Rating must be an integer between 1 and 5",
		},
		{
			name:    "rating zero",
			dto:     model.CreateCommentDTO{PostID: model.Some(int64(1)), Author: model.Some("Bob"), Content: model.Some("Nice"), Rating: model.Some(0)},
			wantErr: "Rating must be an integer between 1 and 5",
		},
		{
			name:    "rating not an integer",
			dto:     model.CreateCommentDTO{PostID: model.Some(int64(1)), Author: model.Some("Bob"), Content: model.Some("Nice"), Rating: model.Optional[int]{Set: true, Invalid: true}},
			wantErr: "Rating must be an integer between 1 and 5",
		},
		{
			name:    "author too long",
			dto:     model.CreateCommentDTO{PostID: model.Some(int64(1)), Author: model.Some(strings.Repeat("a", 101)), Content: model.Some("Nice")},
			wantErr: "Author must be max 100 characters",
		},
		{
			name:    "blank content",
			dto:     model.CreateCommentDTO{PostID: model.Some(int64(1)), Author: model.Some("Bob"), Content: model.Some(" ")},
			wantErr: "Content is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.CreateComment(&tt.dto)
			if tt.wantErr != "" {
				requireValidationMessage(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), got.PostID)
			assert.Equal(t, "Bob", got.Author)
			assert.Equal(t, "Nice", got.Content)
			assert.Equal(t, tt.wantRating, got.Rating)
		})
	}
}

func TestValidator_UpdateComment(t *testing.T) {
	v := New()

	got, err := v.UpdateComment(&model.UpdateCommentDTO{Rating: model.Null[int]()})
	require.NoError(t, err)
	assert.True(t, got.RatingSet)
	assert.Nil(t, got.Rating)

	got, err = v.UpdateComment(&model.UpdateCommentDTO{Rating: model.Some(3), Content: model.Some(" edited ")})
	require.NoError(t, err)
	require.NotNil(t, got.Rating)
	assert.Equal(t, 3, *got.Rating)
	assert.Equal(t, "edited", *got.Content)
	assert.Nil(t, got.Author)

	_, err = v.UpdateComment(&model.UpdateCommentDTO{Rating: model.Some(6)})
	requireValidationMessage(t, err, "Rating must be an integer between 1 and 5")

	_, err = v.UpdateComment(&model.UpdateCommentDTO{Author: model.Some("")})
	requireValidationMessage(t, err, "Author cannot be empty")

	_, err = v.UpdateComment(&model.UpdateCommentDTO{})
	requireValidationMessage(t, err, "No fields to update")
}
