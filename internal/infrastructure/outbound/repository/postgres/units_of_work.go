package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	ports "blogsite-service/internal/domain/ports/output"
	comment_repository "blogsite-service/internal/domain/ports/output/comment"
	post_repository "blogsite-service/internal/domain/ports/output/post"
	comment_repository_postgres "blogsite-service/internal/infrastructure/outbound/repository/comment/postgres"
	post_repository_postgres "blogsite-service/internal/infrastructure/outbound/repository/post/postgres"
	"blogsite-service/internal/infrastructure/outbound/repository/postgres/db"
)

type PostgresUnitOfWork struct {
	pool    db.TxBeginner
	log     ports.Logger
	metrics ports.MetricsProvider
}

func NewPostgresUOW(pool db.TxBeginner, log ports.Logger, metrics ports.MetricsProvider) ports.UnitOfWork {
	return &PostgresUnitOfWork{pool: pool, log: log, metrics: metrics}
}

func (uow *PostgresUnitOfWork) Begin(ctx context.Context) (ports.Transaction, error) {
	tx, err := uow.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("error beginning transaction: %w", err)
	}
	return &PostgresTransaction{tx: tx, log: uow.log, metrics: uow.metrics}, nil
}

type PostgresTransaction struct {
	tx      pgx.Tx
	log     ports.Logger
	metrics ports.MetricsProvider
}

func (t *PostgresTransaction) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback is a no-op on an already finished transaction.
func (t *PostgresTransaction) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if errors.Is(err, pgx.ErrTxClosed) {
		t.log.Debug("Transaction already closed during rollback", slog.String("error", err.Error()))
		return nil
	}
	return err
}

func (t *PostgresTransaction) PostRepository() post_repository.Repository {
	return post_repository_postgres.NewPostRepository(t.tx, t.log, t.metrics)
}

func (t *PostgresTransaction) CommentRepository() comment_repository.Repository {
	return comment_repository_postgres.NewCommentRepository(t.tx, t.log, t.metrics)
}
