package testutil

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/alexanderramin/fitloop/internal/db"
)

// NewFailingUoW returns a unit of work whose nth write inside each
// transaction returns err instead of running. Writes are counted from 1
// and reads are not counted, so a test can break RecordRun between storing
// the run and updating the day's progress.
func NewFailingUoW(database *sql.DB, nth int, err error) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database, db.WithTxWrapper(func(tx db.DBTX) db.DBTX {
		return &failingWrites{DBTX: tx, nth: int64(nth), err: err}
	}))
}

type failingWrites struct {
	db.DBTX
	writes atomic.Int64
	nth    int64
	err    error
}

func (f *failingWrites) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.writes.Add(1) == f.nth {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
