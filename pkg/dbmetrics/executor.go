package dbmetrics

import (
	"context"
	"database/sql"
)

// DBExecutor is the query surface shared by *sql.DB, *sql.Tx and the
// metric-wrapped variants. Repositories depend on this interface only.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor is a DBExecutor bound to an open transaction
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

type ctxKey int

const executorKey ctxKey = iota

// WithExecutor returns a context carrying the given transaction executor.
// Repositories pick it up through GetExecutor, so the same repository code
// runs inside and outside transactions.
func WithExecutor(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, executorKey, tx)
}

// GetExecutor returns the transaction executor stored in the context,
// or the fallback when no transaction is active
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(executorKey).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction reports whether the context carries an active transaction
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(executorKey).(TxExecutor)
	return ok
}
