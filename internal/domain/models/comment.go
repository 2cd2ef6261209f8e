package model

import "time"

const (
	CommentAuthorMaxLength = 100
	RatingMin              = 1
	RatingMax              = 5
)

type Comment struct {
	ID        int64        `json:"id"`
	PostID    int64        `json:"post_id"`
	Author    string       `json:"author"`
	Content   string       `json:"content"`
	Rating    *int         `json:"rating"`
	Post      *PostSummary `json:"post,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type CreateCommentDTO struct {
	PostID  Optional[int64]  `json:"post_id"`
	Author  Optional[string] `json:"author"`
	Content Optional[string] `json:"content"`
	Rating  Optional[int]    `json:"rating"`
}

type UpdateCommentDTO struct {
	Author  Optional[string] `json:"author"`
	Content Optional[string] `json:"content"`
	Rating  Optional[int]    `json:"rating"`
}

// CommentUpdate holds validated fields. When RatingSet is true a nil Rating clears the value.
type CommentUpdate struct {
	Author    *string
	Content   *string
	Rating    *int
	RatingSet bool
}

func (u *CommentUpdate) Empty() bool {
	return u.Author == nil && u.Content == nil && !u.RatingSet
}
