package trm

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type Transaction interface {
	Commit() error
	Rollback() error
}

type txKey struct{}

// WithTx binds tx to ctx; repositories pick it up through ExtractTx.
func WithTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// ExtractTx returns the transaction started by Do, or nil outside of one.
func ExtractTx(ctx context.Context) *sqlx.Tx {
	tx, ok := ctx.Value(txKey{}).(*sqlx.Tx)
	if !ok {
		return nil
	}
	return tx
}

// WithoutTx detaches ctx from the surrounding transaction: writes made with it
// go straight to the pool and survive a rollback of the outer Do.
func WithoutTx(ctx context.Context) context.Context {
	if ExtractTx(ctx) == nil {
		return ctx
	}
	return context.WithValue(ctx, txKey{}, (*sqlx.Tx)(nil))
}

type Manager interface {
	BeginTx(ctx context.Context) (context.Context, Transaction, error)
	Do(ctx context.Context, callback func(ctx context.Context) error) (err error)
}

type Option func(*txManager)

// WithIsolation sets the isolation level of transactions started by the manager.
func WithIsolation(level sql.IsolationLevel) Option {
	return func(t *txManager) { t.opts = &sql.TxOptions{Isolation: level} }
}

type txManager struct {
	db   *sqlx.DB
	opts *sql.TxOptions
}

func NewManager(db *sqlx.DB, opts ...Option) Manager {
	t := &txManager{db: db}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *txManager) BeginTx(ctx context.Context) (context.Context, Transaction, error) {
	// вложенный Do переиспользует внешнюю транзакцию
	if tx := ExtractTx(ctx); tx != nil {
		return ctx, nestedTx{}, nil
	}
	tx, err := t.db.BeginTxx(ctx, t.opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin tx: %w", err)
	}
	return WithTx(ctx, tx), tx, nil
}

func (t *txManager) Do(ctx context.Context, callback func(ctx context.Context) error) (err error) {
	return run(ctx, t, callback)
}

func run(ctx context.Context, m Manager, callback func(ctx context.Context) error) (err error) {
	ctx, tx, err := m.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := callback(ctx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}
	return nil
}

type nestedTx struct{}

func (nestedTx) Commit() error   { return nil }
func (nestedTx) Rollback() error { return nil }

type nopManager struct{}

// NewNopManager returns a Manager for stores without transactions (in-memory storage).
func NewNopManager() Manager {
	return nopManager{}
}

func (nopManager) BeginTx(ctx context.Context) (context.Context, Transaction, error) {
	return ctx, nestedTx{}, nil
}

func (m nopManager) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	return run(ctx, m, callback)
}
