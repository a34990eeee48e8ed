// Package repository holds the pgx-backed persistence layer. Each aggregate
// has its own file with the SQL and row mapping for that table; business
// rules live in the domain and usecase layers, never here.
package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the minimal interface satisfied by *pgxpool.Pool, *pgx.Conn and
// pgx.Tx. Integration tests pass a transaction that is rolled back after
// each test, giving per-test isolation without manual cleanup.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

func isPgErrCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
