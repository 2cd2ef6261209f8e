package post_repository_postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"blogsite-service/internal/custom_errors"
	model "blogsite-service/internal/domain/models"
	ports "blogsite-service/internal/domain/ports/output"
	"blogsite-service/internal/infrastructure/outbound/repository/postgres/db"
	"blogsite-service/internal/infrastructure/outbound/repository/postgres/tableinfo"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	postColumns = []string{
		"p." + tableinfo.PostIDColumn,
		"p." + tableinfo.PostTitleColumn,
		"p." + tableinfo.PostContentColumn,
		"p." + tableinfo.PostAuthorColumn,
		"p." + tableinfo.PostCreatedAtColumn,
		"p." + tableinfo.PostUpdatedAtColumn,
	}
	commentCountColumn = commentCount("p")
	returningColumns = fmt.Sprintf("RETURNING %s, %s, %s, %s, %s, %s",
		tableinfo.PostIDColumn,
		tableinfo.PostTitleColumn,
		tableinfo.PostContentColumn,
		tableinfo.PostAuthorColumn,
		tableinfo.PostCreatedAtColumn,
		tableinfo.PostUpdatedAtColumn)
	likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
)

type PostRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewPostRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *PostRepository {
	return &PostRepository{db: db, log: log, metrics: metrics}
}

func commentCount(postRef string) string {
	return fmt.Sprintf("(SELECT COUNT(*) FROM %s c WHERE c.%s = %s.%s) AS comment_count",
		tableinfo.CommentsTableName, tableinfo.CommentPostIDColumn, postRef, tableinfo.PostIDColumn)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner, withCount bool) (*model.Post, error) {
	post := &model.Post{}
	dest := []any{
		&post.ID,
		&post.Title,
		&post.Content,
		&post.Author,
		&post.CreatedAt,
		&post.UpdatedAt,
	}
	if withCount {
		dest = append(dest, &post.CommentCount)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	post.CreatedAt = post.CreatedAt.UTC()
	post.UpdatedAt = post.UpdatedAt.UTC()
	return post, nil
}

func (p *PostRepository) record(queryType string, start time.Time, success bool) {
	p.metrics.IncrementDatabaseQueries(queryType, success)
	p.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	start := time.Now()
	p.log.Debug("Creating new post", slog.String("author", post.Author), slog.String("title", post.Title))

	now := time.Now().UTC()
	query, args, err := psql.
		Insert(tableinfo.PostsTableName).
		Columns(
			tableinfo.PostTitleColumn,
			tableinfo.PostContentColumn,
			tableinfo.PostAuthorColumn,
			tableinfo.PostCreatedAtColumn,
			tableinfo.PostUpdatedAtColumn,
		).
		Values(post.Title, post.Content, post.Author, now, now).
		Suffix(returningColumns).
		ToSql()
	if err != nil {
		p.log.Error("Error building create post query", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	created, err := scanPost(p.db.QueryRow(ctx, query, args...), false)
	if err != nil {
		p.record("post_create", start, false)
		p.log.Error("Error creating post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.record("post_create", start, true)
	p.log.Debug("Successfully created post", slog.Int64("id", created.ID))
	return created, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	start := time.Now()
	p.log.Debug("Getting post by ID", slog.Int64("id", id))

	query, args, err := psql.
		Select(append(postColumns, commentCountColumn)...).
		From(tableinfo.PostsTableName + " p").
		Where(sq.Eq{"p." + tableinfo.PostIDColumn: id}).
		ToSql()
	if err != nil {
		p.log.Error("Error building get post query", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	post, err := scanPost(p.db.QueryRow(ctx, query, args...), true)
	if err != nil {
		p.record("post_get_by_id", start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error getting post by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.record("post_get_by_id", start, true)
	return post, nil
}

func (p *PostRepository) Exists(ctx context.Context, id int64) (bool, error) {
	start := time.Now()

	query, args, err := psql.
		Select("1").
		From(tableinfo.PostsTableName).
		Where(sq.Eq{tableinfo.PostIDColumn: id}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		p.log.Error("Error building post exists query", slog.String("error", err.Error()))
		return false, custom_errors.ErrDatabaseQuery
	}

	var exists bool
	if err := p.db.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		p.record("post_exists", start, false)
		p.log.Error("Error checking post existence", slog.Int64("id", id), slog.String("error", err.Error()))
		return false, custom_errors.ErrDatabaseQuery
	}

	p.record("post_exists", start, true)
	return exists, nil
}

func (p *PostRepository) Update(ctx context.Context, id int64, update *model.PostUpdate) (*model.Post, error) {
	start := time.Now()
	p.log.Debug("Updating post", slog.Int64("id", id), slog.Any("update_fields", map[string]bool{
		"title":   update.Title != nil,
		"content": update.Content != nil,
		"author":  update.Author != nil,
	}))

	builder := psql.Update(tableinfo.PostsTableName).Where(sq.Eq{tableinfo.PostIDColumn: id})
	if update.Title != nil {
		builder = builder.Set(tableinfo.PostTitleColumn, *update.Title)
	}
	if update.Content != nil {
		builder = builder.Set(tableinfo.PostContentColumn, *update.Content)
	}
	if update.Author != nil {
		builder = builder.Set(tableinfo.PostAuthorColumn, *update.Author)
	}
	// updated_at must move forward even when two writes share a clock tick
	builder = builder.Set(tableinfo.PostUpdatedAtColumn,
		sq.Expr("GREATEST(?, "+tableinfo.PostUpdatedAtColumn+" + INTERVAL '1 microsecond')", time.Now().UTC()))

	query, args, err := builder.
		Suffix(returningColumns + ", " + commentCount(tableinfo.PostsTableName)).
		ToSql()
	if err != nil {
		p.log.Error("Error building update post query", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	updated, err := scanPost(p.db.QueryRow(ctx, query, args...), true)
	if err != nil {
		p.record("post_update", start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id during Update", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error updating post", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.record("post_update", start, true)
	p.log.Debug("Successfully updated post", slog.Int64("id", updated.ID), slog.Time("updated_at", updated.UpdatedAt))
	return updated, nil
}

// Delete removes the post; its comments go with it through ON DELETE CASCADE.
func (p *PostRepository) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	p.log.Debug("Deleting post", slog.Int64("id", id))

	query, args, err := psql.Delete(tableinfo.PostsTableName).Where(sq.Eq{tableinfo.PostIDColumn: id}).ToSql()
	if err != nil {
		p.log.Error("Error building delete post query", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	result, err := p.db.Exec(ctx, query, args...)
	if err != nil {
		p.record("post_delete", start, false)
		p.log.Error("Error deleting post", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		p.record("post_delete", start, false)
		p.log.Debug("Post not found during deletion", slog.Int64("id", id))
		return custom_errors.ErrPostNotFound
	}

	p.record("post_delete", start, true)
	p.log.Debug("Successfully deleted post", slog.Int64("id", id))
	return nil
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]*model.Post, int64, error) {
	start := time.Now()
	p.log.Debug("Listing posts with filters",
		slog.String("search", filters.Search),
		slog.Int("page", filters.Page),
		slog.Int("per_page", filters.PerPage))

	listQuery, countQuery := buildListQueries(filters)

	query, args, err := countQuery.ToSql()
	if err != nil {
		p.log.Error("Error building count posts query", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}
	var total int64
	if err := p.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		p.record("post_count", start, false)
		p.log.Error("Error counting posts", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}
	p.record("post_count", start, true)

	query, args, err = listQuery.ToSql()
	if err != nil {
		p.log.Error("Error building list posts query", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		p.record("post_list", start, false)
		p.log.Error("Error listing posts", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	posts := make([]*model.Post, 0, filters.PerPage)
	for rows.Next() {
		post, err := scanPost(rows, true)
		if err != nil {
			p.record("post_list", start, false)
			p.log.Error("Error scanning post during List", slog.String("error", err.Error()))
			return nil, 0, custom_errors.ErrDatabaseQuery
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		p.record("post_list", start, false)
		p.log.Error("Error iterating rows during List", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}

	p.record("post_list", start, true)
	p.log.Debug("Successfully listed posts", slog.Int("count", len(posts)), slog.Int64("total", total))
	return posts, total, nil
}

// buildListQueries returns the page query and the matching count query for the same filter.
func buildListQueries(filters model.PostFilters) (sq.SelectBuilder, sq.SelectBuilder) {
	listQuery := psql.
		Select(append(postColumns, commentCountColumn)...).
		From(tableinfo.PostsTableName + " p")
	countQuery := psql.
		Select("COUNT(*)").
		From(tableinfo.PostsTableName + " p")

	if search := strings.TrimSpace(filters.Search); search != "" {
		pattern := "%" + likeEscaper.Replace(search) + "%"
		cond := sq.Or{
			sq.ILike{"p." + tableinfo.PostTitleColumn: pattern},
			sq.ILike{"p." + tableinfo.PostContentColumn: pattern},
			sq.ILike{"p." + tableinfo.PostAuthorColumn: pattern},
		}
		listQuery = listQuery.Where(cond)
		countQuery = countQuery.Where(cond)
	}

	listQuery = listQuery.
		OrderBy("p."+tableinfo.PostCreatedAtColumn+" DESC", "p."+tableinfo.PostIDColumn+" DESC").
		Limit(uint64(filters.PerPage)).
		Offset(uint64(filters.Offset()))

	return listQuery, countQuery
}
