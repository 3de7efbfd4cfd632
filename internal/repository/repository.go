// Package repository contains data access layer abstractions.
// Implementations live in subpackages (postgres) inside this directory.
package repository

import (
	"context"
	"errors"
)

var (
	// ErrVersionConflict reports that an insert lost the race on the
	// (contract_id, version) uniqueness constraint. Callers recompute the
	// version and retry a bounded number of times.
	ErrVersionConflict = errors.New("document version already taken")

	// ErrMissingContract reports a write referencing a contract id that does
	// not exist (foreign key violation).
	ErrMissingContract = errors.New("referenced contract does not exist")
)

// TxManager runs a function inside a single database transaction. Repository
// methods invoked from the callback join that transaction; the upload path
// relies on this to commit a document row and its audit event as one unit.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
type PageResult[T any] struct {
	Items []T
	Total int
}
