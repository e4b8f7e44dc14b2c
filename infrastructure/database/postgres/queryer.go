package postgres

import (
	"context"
	"database/sql"
)

// Queryer é o subconjunto de *sql.Tx usado pelos repositórios.
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
