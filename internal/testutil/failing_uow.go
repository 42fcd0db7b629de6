package testutil

import (
	"context"
	"database/sql"
	"strings"

	"github.com/alexanderramin/mooncyc/internal/db"
)

// FailingInsertUoW runs the real transaction but fails the first INSERT into
// Table with Err, so import tests can check that earlier writes roll back.
type FailingInsertUoW struct {
	DB    *sql.DB
	Table string
	Err   error
}

func (u *FailingInsertUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return db.NewSQLiteUnitOfWork(u.DB).WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &failingInsert{DBTX: tx, prefix: "INSERT INTO " + u.Table + " ", err: u.Err})
	})
}

type failingInsert struct {
	db.DBTX
	prefix string
	err    error
}

func (f *failingInsert) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if strings.HasPrefix(strings.TrimSpace(query), f.prefix) {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
