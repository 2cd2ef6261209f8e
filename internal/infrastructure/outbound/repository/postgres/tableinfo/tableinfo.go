package tableinfo

const (
	PostsTableName = "posts"

	PostIDColumn        = "id"
	PostTitleColumn     = "title"
	PostContentColumn   = "content"
	PostAuthorColumn    = "author"
	PostCreatedAtColumn = "created_at"
	PostUpdatedAtColumn = "updated_at"
)

const (
	CommentsTableName = "comments"

	CommentIDColumn        = "id"
	CommentPostIDColumn    = "post_id"
	CommentAuthorColumn    = "author"
	CommentContentColumn   = "content"
	CommentRatingColumn    = "rating"
	CommentCreatedAtColumn = "created_at"
	CommentUpdatedAtColumn = "updated_at"
)

const ForeignKeyViolationCode = "23503"
