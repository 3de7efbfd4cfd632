package repository

import (
	"context"

	"contracthub/internal/model"
)

// ContractRepository defines persistence for contracts.
type ContractRepository interface {
	Create(ctx context.Context, c *model.Contract) (*model.Contract, error)

	// Update rewrites the mutable fields of an existing contract.
	Update(ctx context.Context, c *model.Contract) (*model.Contract, error)

	// FindByID returns the contract joined with its vendor name, if any.
	FindByID(ctx context.Context, id string) (*model.Contract, error)

	// List returns contracts newest-updated first, with vendor names joined.
	List(ctx context.Context) ([]model.Contract, error)

	// Exists reports whether the contract id references a stored contract.
	// Checked before any document, tag, or extraction operation.
	Exists(ctx context.Context, id string) (bool, error)

	// CountByState tallies contracts per lifecycle state, ordered by state.
	CountByState(ctx context.Context) ([]model.ContractStateCount, error)
}

// VendorRepository defines persistence for vendors.
type VendorRepository interface {
	Create(ctx context.Context, v *model.Vendor) (*model.Vendor, error)
	Update(ctx context.Context, v *model.Vendor) (*model.Vendor, error)
	FindByID(ctx context.Context, id string) (*model.Vendor, error)

	// List returns vendors ordered by name.
	List(ctx context.Context) ([]model.Vendor, error)
}

// ExtractionRepository defines persistence for extraction log entries.
// Entries are insert-only.
type ExtractionRepository interface {
	Create(ctx context.Context, e *model.Extraction) (*model.Extraction, error)
	ListByContract(ctx context.Context, contractID string) ([]model.Extraction, error)
}
