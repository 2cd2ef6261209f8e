package memory

import (
	"context"
	"errors"

	ports "blogsite-service/internal/domain/ports/output"
	comment_repository "blogsite-service/internal/domain/ports/output/comment"
	post_repository "blogsite-service/internal/domain/ports/output/post"
)

var ErrTxClosed = errors.New("tx is closed")

type UnitOfWork struct {
	store *Store
	log   ports.Logger
}

func NewUnitOfWork(store *Store, log ports.Logger) ports.UnitOfWork {
	return &UnitOfWork{store: store, log: log}
}

// Begin blocks until no other transaction is open, then snapshots the store.
func (u *UnitOfWork) Begin(ctx context.Context) (ports.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u.store.mu.Lock()
	return &Transaction{store: u.store, working: u.store.state.clone(), log: u.log}, nil
}

type Transaction struct {
	store   *Store
	working *state
	log     ports.Logger
	done    bool
}

func (t *Transaction) PostRepository() post_repository.Repository {
	return &PostRepository{store: t.store, st: t.working, log: t.log}
}

func (t *Transaction) CommentRepository() comment_repository.Repository {
	return &CommentRepository{store: t.store, st: t.working, log: t.log}
}

func (t *Transaction) Commit(ctx context.Context) error {
	if t.done {
		return ErrTxClosed
	}
	t.store.state = t.working
	t.done = true
	t.store.mu.Unlock()
	return nil
}

func (t *Transaction) Rollback(ctx context.Context) error {
	if t.done {
		return nil
	}
	t.done = true
	t.store.mu.Unlock()
	return nil
}
