package service

import (
	"context"
	"strings"

	"contracthub/internal/repository"
)

// ParseTagList splits a raw comma-separated tag string into candidates.
// Whitespace-only entries survive here and are dropped by normalization.
func ParseTagList(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

// normalizeTagNames trims each candidate, drops empties, and removes exact
// duplicates while preserving order. Comparison is case-sensitive: "A" and
// "a" are distinct vocabulary entries.
func normalizeTagNames(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		cleaned := strings.TrimSpace(name)
		if cleaned == "" {
			continue
		}
		if _, dup := seen[cleaned]; dup {
			continue
		}
		seen[cleaned] = struct{}{}
		out = append(out, cleaned)
	}
	return out
}

// TagService reconciles a contract's tag set against the shared vocabulary.
type TagService interface {
	// SetTags replaces the contract's full tag set with the normalized form
	// of names. The replacement and its audit event commit as one
	// transaction; on failure the old set remains intact. Tags dropped from
	// the set stay in the vocabulary.
	SetTags(ctx context.Context, contractID string, names []string, actor string) error

	// GetTags returns the contract's tag names sorted ascending.
	GetTags(ctx context.Context, contractID string) ([]string, error)
}

type tagService struct {
	tags      repository.TagRepository
	contracts repository.ContractRepository
	audit     repository.AuditRepository
	tx        repository.TxManager
}

// NewTagService constructs a new TagService.
func NewTagService(
	tags repository.TagRepository,
	contracts repository.ContractRepository,
	audit repository.AuditRepository,
	tx repository.TxManager,
) TagService {
	return &tagService{tags: tags, contracts: contracts, audit: audit, tx: tx}
}

func (s *tagService) SetTags(ctx context.Context, contractID string, names []string, actor string) error {
	exists, err := s.contracts.Exists(ctx, contractID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrContractNotFound
	}

	normalized := normalizeTagNames(names)
	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.tags.ReplaceForContract(txCtx, contractID, normalized); err != nil {
			return err
		}
		details := strings.Join(normalized, ", ")
		return s.audit.Append(txCtx, newAuditEvent(&contractID, "Updated tags", actor, details))
	})
}

func (s *tagService) GetTags(ctx context.Context, contractID string) ([]string, error) {
	exists, err := s.contracts.Exists(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrContractNotFound
	}
	return s.tags.ListByContract(ctx, contractID)
}
