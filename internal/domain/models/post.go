package model

import "time"

const (
	PostTitleMaxLength  = 200
	PostAuthorMaxLength = 100
)

type Post struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	Author       string     `json:"author"`
	CommentCount int64      `json:"comment_count"`
	Comments     []*Comment `json:"comments,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type PostSummary struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

func (p *Post) Summary() *PostSummary {
	return &PostSummary{ID: p.ID, Title: p.Title, Author: p.Author}
}

// CreatePostDTO is the request payload for creating a post.
type CreatePostDTO struct {
	Title   Optional[string] `json:"title"`
	Content Optional[string] `json:"content"`
	Author  Optional[string] `json:"author"`
}

// UpdatePostDTO is the request payload for a partial post update.
type UpdatePostDTO struct {
	Title   Optional[string] `json:"title"`
	Content Optional[string] `json:"content"`
	Author  Optional[string] `json:"author"`
}

// PostUpdate holds validated fields; nil means unchanged.
type PostUpdate struct {
	Title   *string
	Content *string
	Author  *string
}

func (u *PostUpdate) Empty() bool {
	return u.Title == nil && u.Content == nil && u.Author == nil
}
