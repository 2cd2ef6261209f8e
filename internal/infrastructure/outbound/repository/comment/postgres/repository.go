package comment_repository_postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"blogsite-service/internal/custom_errors"
	model "blogsite-service/internal/domain/models"
	ports "blogsite-service/internal/domain/ports/output"
	"blogsite-service/internal/infrastructure/outbound/repository/postgres/db"
	"blogsite-service/internal/infrastructure/outbound/repository/postgres/tableinfo"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	commentColumns = []string{
		"c." + tableinfo.CommentIDColumn,
		"c." + tableinfo.CommentPostIDColumn,
		"c." + tableinfo.CommentAuthorColumn,
		"c." + tableinfo.CommentContentColumn,
		"c." + tableinfo.CommentRatingColumn,
		"c." + tableinfo.CommentCreatedAtColumn,
		"c." + tableinfo.CommentUpdatedAtColumn,
	}
	returningColumns = fmt.Sprintf("RETURNING %s, %s, %s, %s, %s, %s, %s",
		tableinfo.CommentIDColumn,
		tableinfo.CommentPostIDColumn,
		tableinfo.CommentAuthorColumn,
		tableinfo.CommentContentColumn,
		tableinfo.CommentRatingColumn,
		tableinfo.CommentCreatedAtColumn,
		tableinfo.CommentUpdatedAtColumn)
	commentsFrom = tableinfo.CommentsTableName + " c"
	orderNewest  = []string{
		"c." + tableinfo.CommentCreatedAtColumn + " DESC",
		"c." + tableinfo.CommentIDColumn + " DESC",
	}
)

type CommentRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewCommentRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *CommentRepository {
	return &CommentRepository{db: db, log: log, metrics: metrics}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanComment(row rowScanner, extra ...any) (*model.Comment, error) {
	comment := &model.Comment{}
	dest := append([]any{
		&comment.ID,
		&comment.PostID,
		&comment.Author,
		&comment.Content,
		&comment.Rating,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	comment.CreatedAt = comment.CreatedAt.UTC()
	comment.UpdatedAt = comment.UpdatedAt.UTC()
	return comment, nil
}

func (r *CommentRepository) record(queryType string, start time.Time, success bool) {
	r.metrics.IncrementDatabaseQueries(queryType, success)
	r.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}

func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	start := time.Now()
	r.log.Debug("Creating new comment", slog.Int64("post_id", comment.PostID), slog.String("author", comment.Author))

	now := time.Now().UTC()
	query, args, err := psql.
		Insert(tableinfo.CommentsTableName).
		Columns(
			tableinfo.CommentPostIDColumn,
			tableinfo.CommentAuthorColumn,
			tableinfo.CommentContentColumn,
			tableinfo.CommentRatingColumn,
			tableinfo.CommentCreatedAtColumn,
			tableinfo.CommentUpdatedAtColumn,
		).
		Values(comment.PostID, comment.Author, comment.Content, comment.Rating, now, now).
		Suffix(returningColumns).
		ToSql()
	if err != nil {
		r.log.Error("Error building create comment query", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	created, err := scanComment(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		r.record("comment_create", start, false)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == tableinfo.ForeignKeyViolationCode {
			r.log.Debug("Post vanished before comment insert", slog.Int64("post_id", comment.PostID))
			return nil, custom_errors.ErrPostNotFound
		}
		r.log.Error("Error creating comment", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.record("comment_create", start, true)
	r.log.Debug("Successfully created comment", slog.Int64("id", created.ID), slog.Int64("post_id", created.PostID))
	return created, nil
}

// GetByID loads the comment together with a summary of its post.
func (r *CommentRepository) GetByID(ctx context.Context, id int64) (*model.Comment, error) {
	start := time.Now()
	r.log.Debug("Getting comment by ID", slog.Int64("id", id))

	columns := append(append([]string{}, commentColumns...),
		"p."+tableinfo.PostTitleColumn,
		"p."+tableinfo.PostAuthorColumn)
	query, args, err := psql.
		Select(columns...).
		From(commentsFrom).
		Join(fmt.Sprintf("%s p ON p.%s = c.%s", tableinfo.PostsTableName, tableinfo.PostIDColumn, tableinfo.CommentPostIDColumn)).
		Where(sq.Eq{"c." + tableinfo.CommentIDColumn: id}).
		ToSql()
	if err != nil {
		r.log.Error("Error building get comment query", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	summary := &model.PostSummary{}
	comment, err := scanComment(r.db.QueryRow(ctx, query, args...), &summary.Title, &summary.Author)
	if err != nil {
		r.record("comment_get_by_id", start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			r.log.Debug("Comment not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrCommentNotFound
		}
		r.log.Error("Error getting comment by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	summary.ID = comment.PostID
	comment.Post = summary

	r.record("comment_get_by_id", start, true)
	return comment, nil
}

func (r *CommentRepository) Update(ctx context.Context, id int64, update *model.CommentUpdate) (*model.Comment, error) {
	start := time.Now()
	r.log.Debug("Updating comment", slog.Int64("id", id), slog.Any("update_fields", map[string]bool{
		"author":  update.Author != nil,
		"content": update.Content != nil,
		"rating":  update.RatingSet,
	}))

	builder := psql.Update(tableinfo.CommentsTableName).Where(sq.Eq{tableinfo.CommentIDColumn: id})
	if update.Author != nil {
		builder = builder.Set(tableinfo.CommentAuthorColumn, *update.Author)
	}
	if update.Content != nil {
		builder = builder.Set(tableinfo.CommentContentColumn, *update.Content)
	}
	if update.RatingSet {
		builder = builder.Set(tableinfo.CommentRatingColumn, update.Rating)
	}
	builder = builder.Set(tableinfo.CommentUpdatedAtColumn,
		sq.Expr("GREATEST(?, "+tableinfo.CommentUpdatedAtColumn+" + INTERVAL '1 microsecond')", time.Now().UTC()))

	query, args, err := builder.Suffix(returningColumns).ToSql()
	if err != nil {
		r.log.Error("Error building update comment query", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	updated, err := scanComment(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		r.record("comment_update", start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			r.log.Debug("Comment not found by id during Update", slog.Int64("id", id))
			return nil, custom_errors.ErrCommentNotFound
		}
		r.log.Error("Error updating comment", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.record("comment_update", start, true)
	return updated, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	r.log.Debug("Deleting comment", slog.Int64("id", id))

	query, args, err := psql.Delete(tableinfo.CommentsTableName).Where(sq.Eq{tableinfo.CommentIDColumn: id}).ToSql()
	if err != nil {
		r.log.Error("Error building delete comment query", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.record("comment_delete", start, false)
		r.log.Error("Error deleting comment", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		r.record("comment_delete", start, false)
		r.log.Debug("Comment not found during deletion", slog.Int64("id", id))
		return custom_errors.ErrCommentNotFound
	}

	r.record("comment_delete", start, true)
	return nil
}

func (r *CommentRepository) List(ctx context.Context, filters model.CommentFilters) ([]*model.Comment, int64, error) {
	start := time.Now()
	r.log.Debug("Listing comments with filters",
		slog.Any("post_id", filters.PostID),
		slog.Int("page", filters.Page),
		slog.Int("per_page", filters.PerPage))

	listQuery, countQuery := buildListQueries(filters)

	query, args, err := countQuery.ToSql()
	if err != nil {
		r.log.Error("Error building count comments query", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}
	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		r.record("comment_count", start, false)
		r.log.Error("Error counting comments", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}
	r.record("comment_count", start, true)

	query, args, err = listQuery.ToSql()
	if err != nil {
		r.log.Error("Error building list comments query", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}

	comments, err := r.query(ctx, "comment_list", query, args)
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error) {
	r.log.Debug("Listing all comments of post", slog.Int64("post_id", postID))

	query, args, err := psql.
		Select(commentColumns...).
		From(commentsFrom).
		Where(sq.Eq{"c." + tableinfo.CommentPostIDColumn: postID}).
		OrderBy(orderNewest...).
		ToSql()
	if err != nil {
		r.log.Error("Error building list comments by post query", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return r.query(ctx, "comment_list_by_post", query, args)
}

func (r *CommentRepository) query(ctx context.Context, queryType, query string, args []any) ([]*model.Comment, error) {
	start := time.Now()

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.record(queryType, start, false)
		r.log.Error("Error querying comments", slog.String("query_type", queryType), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	comments := make([]*model.Comment, 0)
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			r.record(queryType, start, false)
			r.log.Error("Error scanning comment", slog.String("query_type", queryType), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		r.record(queryType, start, false)
		r.log.Error("Error iterating comment rows", slog.String("query_type", queryType), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.record(queryType, start, true)
	return comments, nil
}

func buildListQueries(filters model.CommentFilters) (sq.SelectBuilder, sq.SelectBuilder) {
	listQuery := psql.Select(commentColumns...).From(commentsFrom)
	countQuery := psql.Select("COUNT(*)").From(commentsFrom)

	if filters.PostID != nil {
		cond := sq.Eq{"c." + tableinfo.CommentPostIDColumn: *filters.PostID}
		listQuery = listQuery.Where(cond)
		countQuery = countQuery.Where(cond)
	}

	listQuery = listQuery.
		OrderBy(orderNewest...).
		Limit(uint64(filters.PerPage)).
		Offset(uint64(filters.Offset()))

	return listQuery, countQuery
}
