package db

import (
	"context"
	"database/sql"
)

// DBTX is the query surface the repositories need. A plain *sql.DB serves
// reads and single statements; inside UnitOfWork.WithinTx the same
// repositories receive the *sql.Tx instead.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
