package service

import (
	"context"
	"strings"
	"time"

	"contracthub/internal/model"
	"contracthub/internal/repository"
)

// DefaultActor is recorded when the caller supplies no actor label. Actor
// identity is a free-text label, never authenticated by this subsystem.
const DefaultActor = "system"

// newAuditEvent builds the event other services append inside their own
// transactions, so the record commits or rolls back with the mutation itself.
func newAuditEvent(contractID *string, action, actor, details string) *model.AuditEvent {
	if strings.TrimSpace(actor) == "" {
		actor = DefaultActor
	}
	return &model.AuditEvent{
		ContractID: contractID,
		Action:     action,
		Actor:      actor,
		CreatedAt:  time.Now().UTC(),
		Details:    details,
	}
}

// AuditListResult is the service-level DTO for a page of the audit trail.
type AuditListResult struct {
	Items []model.AuditEvent `json:"data"`
	Total int                `json:"total"`
}

// AuditService exposes the audit trail to collaborators. The trail is
// append-only; there is no update or delete operation.
type AuditService interface {
	// Record appends one event. contractID may be nil for
	// contract-independent actions; a blank actor becomes "system".
	Record(ctx context.Context, contractID *string, action, actor, details string) error

	// List returns events newest first, optionally filtered by contract.
	List(ctx context.Context, contractID *string, limit, offset int) (*AuditListResult, error)
}

type auditService struct {
	audit repository.AuditRepository
}

// NewAuditService constructs a new AuditService.
func NewAuditService(audit repository.AuditRepository) AuditService {
	return &auditService{audit: audit}
}

func (s *auditService) Record(ctx context.Context, contractID *string, action, actor, details string) error {
	return s.audit.Append(ctx, newAuditEvent(contractID, action, actor, details))
}

func (s *auditService) List(ctx context.Context, contractID *string, limit, offset int) (*AuditListResult, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	res, err := s.audit.List(ctx, contractID, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &AuditListResult{Items: res.Items, Total: res.Total}, nil
}
