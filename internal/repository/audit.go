package repository

import (
	"context"

	"contracthub/internal/model"
)

// AuditRepository persists the append-only audit trail. There is no update or
// delete method.
type AuditRepository interface {
	// Append inserts one audit event. It joins an open transaction from the
	// context so the event commits or rolls back with the mutation it records.
	Append(ctx context.Context, event *model.AuditEvent) error

	// List returns events newest first (created_at, then id, descending).
	// A nil contractID returns the whole trail; otherwise only events for
	// that contract.
	List(ctx context.Context, contractID *string, pq PageQuery) (*PageResult[model.AuditEvent], error)
}
