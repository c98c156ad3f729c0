package trm

import (
	"context"
	"sync"

	"github.com/jmoiron/sqlx"
)

type Transaction interface {
	Commit() error
	Rollback() error
}

type txKey struct{}

func withTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func ExtractTx(ctx context.Context) *sqlx.Tx {
	tx, ok := ctx.Value(txKey{}).(*sqlx.Tx)
	if !ok {
		return nil
	}
	return tx
}

// Manager runs a callback as one atomic unit. A Do nested inside another Do
// joins the outer transaction.
type Manager interface {
	BeginTx(ctx context.Context) (context.Context, Transaction, error)
	Do(ctx context.Context, callback func(ctx context.Context) error) (err error)
}

type txManager struct {
	db *sqlx.DB
}

func NewManager(db *sqlx.DB) Manager {
	return &txManager{
		db: db,
	}
}

func (t *txManager) BeginTx(ctx context.Context) (context.Context, Transaction, error) {
	tx, err := t.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	return withTx(ctx, tx), tx, nil
}

func (t *txManager) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	if ExtractTx(ctx) != nil {
		return callback(ctx)
	}

	ctx, tx, err := t.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := callback(ctx); err != nil {
		return err
	}
	return tx.Commit()
}

type memoryTxKey struct{}

// memoryManager serializes transactions for the in-memory store. It gives no
// rollback: a failed callback keeps the writes it already made.
type memoryManager struct {
	mu sync.Mutex
}

func NewMemoryManager() Manager {
	return &memoryManager{}
}

type memoryTx struct {
	release func()
}

func (t *memoryTx) Commit() error {
	t.release()
	return nil
}

func (t *memoryTx) Rollback() error {
	t.release()
	return nil
}

func (m *memoryManager) BeginTx(ctx context.Context) (context.Context, Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	m.mu.Lock()
	return context.WithValue(ctx, memoryTxKey{}, true), &memoryTx{release: sync.OnceFunc(m.mu.Unlock)}, nil
}

func (m *memoryManager) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	if inTx, _ := ctx.Value(memoryTxKey{}).(bool); inTx {
		return callback(ctx)
	}

	ctx, tx, err := m.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := callback(ctx); err != nil {
		return err
	}
	return tx.Commit()
}
