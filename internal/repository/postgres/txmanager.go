package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"contracthub/internal/repository"
)

// TxManager implements repository.TxManager over database/sql. Nested RunInTx
// calls are not supported: a RunInTx inside a RunInTx callback opens a second
// independent transaction, which is a bug.
type TxManager struct {
	db *sql.DB
}

// NewTxManager creates a TxManager bound to db.
func NewTxManager(db *sql.DB) *TxManager {
	return &TxManager{db: db}
}

var _ repository.TxManager = (*TxManager)(nil)

// RunInTx executes fn within one transaction at the default isolation level
// (Read Committed). Commits on success; rolls back on error or panic.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
