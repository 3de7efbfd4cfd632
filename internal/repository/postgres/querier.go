package postgres

import (
	"context"
	"database/sql"
)

// querier is the subset of database/sql shared by *sql.DB and *sql.Tx.
// Repositories resolve one per call so the same method works standalone or
// inside a transaction opened by TxManager.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txCtxKey struct{}

// withTx stores an open transaction in the context.
func withTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txCtxKey{}, tx)
}

// querierFrom returns the transaction carried by ctx if present, otherwise db.
func querierFrom(ctx context.Context, db *sql.DB) querier {
	if tx, ok := ctx.Value(txCtxKey{}).(*sql.Tx); ok {
		return tx
	}
	return db
}
