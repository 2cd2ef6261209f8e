// Package txrunner runs a unit of work inside one store transaction.
package txrunner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"blogsite-service/internal/custom_errors"
	ports "blogsite-service/internal/domain/ports/output"
)

// Run begins a transaction, calls fn and commits when fn succeeds. Any error
// from fn or from commit leaves the transaction rolled back.
func Run[T any](ctx context.Context, uow ports.UnitOfWork, log ports.Logger, fn func(tx ports.Transaction) (T, error)) (result T, err error) {
	tx, err := uow.Begin(ctx)
	if err != nil {
		log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return result, fmt.Errorf("%w: begin transaction: %v", custom_errors.ErrDatabaseQuery, err)
	}

	var txCommitted bool
	defer func() {
		if txCommitted {
			return
		}
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			if !strings.Contains(rollbackErr.Error(), "tx is closed") {
				log.Error("Failed to rollback transaction", slog.String("error", rollbackErr.Error()))
			} else {
				log.Debug("Transaction already closed during rollback", slog.String("error", rollbackErr.Error()))
			}
		}
	}()

	result, err = fn(tx)
	if err != nil {
		var zero T
		return zero, err
	}

	if err = tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		var zero T
		return zero, fmt.Errorf("%w: commit transaction: %v", custom_errors.ErrDatabaseQuery, err)
	}
	txCommitted = true

	return result, nil
}
