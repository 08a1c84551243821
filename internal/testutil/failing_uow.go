package testutil

import (
	"context"
	"database/sql"
	"strings"
	"sync"

	"github.com/alexanderramin/braindump/internal/db"
)

// FailingUoW runs real transactions but fails one write inside them, so
// tests can check that a half-written brain dump is rolled back.
//
// A write fails when it is the FailOn-th ExecContext call (counted from 1)
// or when its SQL contains FailOnQuery. Reads always pass through.
type FailingUoW struct {
	DB          *sql.DB
	FailOn      int
	FailOnQuery string
	Err         error
}

func (u *FailingUoW) WithinTx(ctx context.Context, fn db.TxFunc) error {
	return db.NewSQLiteUnitOfWork(u.DB).WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &failingTx{DBTX: tx, uow: u})
	})
}

type failingTx struct {
	db.DBTX
	uow *FailingUoW

	mu    sync.Mutex
	execs int
}

func (f *failingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.mu.Lock()
	f.execs++
	n := f.execs
	f.mu.Unlock()

	if n == f.uow.FailOn || (f.uow.FailOnQuery != "" && strings.Contains(query, f.uow.FailOnQuery)) {
		return nil, f.uow.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
