package repository

import "context"

// TagRepository maintains the shared tag vocabulary and each contract's
// association set. Vocabulary names are unique by exact string comparison
// (case-sensitive); unused names are never garbage collected.
type TagRepository interface {
	// ReplaceForContract atomically swaps the contract's tag set: all prior
	// associations are removed, missing vocabulary entries are created, and
	// an association is ensured for every name. Names are assumed already
	// normalized (trimmed, non-empty). Joins an open transaction from ctx.
	ReplaceForContract(ctx context.Context, contractID string, names []string) error

	// ListByContract returns the contract's tag names sorted ascending.
	ListByContract(ctx context.Context, contractID string) ([]string, error)
}
