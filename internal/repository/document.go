package repository

import (
	"context"

	"contracthub/internal/model"
)

// DocumentRepository defines persistence for document revisions. Strictly SQL;
// no business logic. Documents are insert-only: there is no update or delete
// operation.
type DocumentRepository interface {
	// Create inserts a new document row carrying an already-assigned version.
	// Returns ErrVersionConflict when (contract_id, version) is already taken
	// and ErrMissingContract when the contract id dangles.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// NextVersion returns max(version)+1 for the contract, or 1 when the
	// contract has no documents yet. The value is only a candidate: the
	// uniqueness constraint checked by Create is what serializes assignment.
	NextVersion(ctx context.Context, contractID string) (int, error)

	// ListByContract returns the contract's documents, newest version first.
	ListByContract(ctx context.Context, contractID string) ([]model.Document, error)

	// FindByStorageName returns the document row addressing the given object.
	FindByStorageName(ctx context.Context, storageName string) (*model.Document, error)
}
