package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// DBTX is the query surface shared by *sql.DB and *sql.Tx. Repositories take
// a DBTX so the same code runs against the pool or inside a workout record
// transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)

// UnitOfWork groups the writes of one use case, such as storing a run and
// folding it into the day's progress entry, so they land together or not
// at all.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error
}

// TxOption configures a SQLiteUnitOfWork.
type TxOption func(*SQLiteUnitOfWork)

// WithTxWrapper decorates the DBTX handed to each callback. Tests use it to
// inject write failures partway through a transaction.
func WithTxWrapper(wrap func(DBTX) DBTX) TxOption {
	return func(u *SQLiteUnitOfWork) { u.wrap = wrap }
}

type SQLiteUnitOfWork struct {
	db   *sql.DB
	wrap func(DBTX) DBTX
}

func NewSQLiteUnitOfWork(db *sql.DB, opts ...TxOption) *SQLiteUnitOfWork {
	u := &SQLiteUnitOfWork{db: db}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// WithinTx runs fn in a transaction. A nil return commits; an error or a
// panic rolls back, and the panic is re-raised afterwards.
func (u *SQLiteUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		rbErr := tx.Rollback()
		if p := recover(); p != nil {
			panic(p)
		}
		if rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			err = errors.Join(err, fmt.Errorf("rolling back: %w", rbErr))
		}
	}()

	var q DBTX = tx
	if u.wrap != nil {
		q = u.wrap(q)
	}
	if err = fn(ctx, q); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	committed = true
	return nil
}
