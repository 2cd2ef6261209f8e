package response

import (
	"time"

	model "blogsite-service/internal/domain/models"
)

const (
	isoSeconds = "2006-01-02T15:04:05"
	isoMicros  = "2006-01-02T15:04:05.000000"
)

// Timestamp renders t in UTC as an ISO-8601 string with an explicit +00:00
// offset. Fractional seconds appear only when non-zero, at microsecond precision.
// A zero time renders as nil so it serializes as JSON null.
func Timestamp(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	t = t.UTC()
	layout := isoSeconds
	if t.Nanosecond()/int(time.Microsecond) != 0 {
		layout = isoMicros
	}
	formatted := t.Format(layout) + "+00:00"
	return &formatted
}

type Post struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Content      string  `json:"content"`
	Author       string  `json:"author"`
	CreatedAt    *string `json:"created_at"`
	UpdatedAt    *string `json:"updated_at"`
	CommentCount int64   `json:"comment_count"`
}

type PostWithComments struct {
	Post
	Comments []Comment `json:"comments"`
}

type Comment struct {
	ID        int64   `json:"id"`
	PostID    int64   `json:"post_id"`
	Author    string  `json:"author"`
	Content   string  `json:"content"`
	Rating    *int    `json:"rating"`
	CreatedAt *string `json:"created_at"`
	UpdatedAt *string `json:"updated_at"`
}

type CommentWithPost struct {
	Comment
	Post *model.PostSummary `json:"post"`
}

func NewPost(p *model.Post) Post {
	return Post{
		ID:           p.ID,
		Title:        p.Title,
		Content:      p.Content,
		Author:       p.Author,
		CreatedAt:    Timestamp(p.CreatedAt),
		UpdatedAt:    Timestamp(p.UpdatedAt),
		CommentCount: p.CommentCount,
	}
}

func NewPosts(posts []*model.Post) []Post {
	result := make([]Post, 0, len(posts))
	for _, p := range posts {
		result = append(result, NewPost(p))
	}
	return result
}

func NewPostWithComments(p *model.Post) PostWithComments {
	return PostWithComments{Post: NewPost(p), Comments: NewComments(p.Comments)}
}

func NewComment(c *model.Comment) Comment {
	return Comment{
		ID:        c.ID,
		PostID:    c.PostID,
		Author:    c.Author,
		Content:   c.Content,
		Rating:    c.Rating,
		CreatedAt: Timestamp(c.CreatedAt),
		UpdatedAt: Timestamp(c.UpdatedAt),
	}
}

func NewComments(comments []*model.Comment) []Comment {
	result := make([]Comment, 0, len(comments))
	for _, c := range comments {
		result = append(result, NewComment(c))
	}
	return result
}

func NewCommentWithPost(c *model.Comment) CommentWithPost {
	return CommentWithPost{Comment: NewComment(c), Post: c.Post}
}
