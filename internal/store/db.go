package store

import (
	"context"
	"database/sql"
)

// DBTX is an interface that abstracts the database access layer.
// It is implemented by *sql.DB, *sql.Tx and *sql.Conn, allowing our code
// to work with a shared pool, a transaction, or a single checked-out
// connection interchangeably.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// connContextKey is the context key under which the request's checked-out
// database connection is stored.
type connContextKey struct{}

// WithConn returns a context carrying the given database handle. The
// connection middleware uses this to make the request's single checked-out
// connection visible to every store call made while handling the request.
func WithConn(ctx context.Context, db DBTX) context.Context {
	return context.WithValue(ctx, connContextKey{}, db)
}

// ConnFromContext returns the database handle stored in the context, or
// the provided fallback if none is present. Store implementations call
// this so that requests run on their own connection while tests and
// background work can still go through the pool directly.
func ConnFromContext(ctx context.Context, fallback DBTX) DBTX {
	if db, ok := ctx.Value(connContextKey{}).(DBTX); ok && db != nil {
		return db
	}
	return fallback
}
