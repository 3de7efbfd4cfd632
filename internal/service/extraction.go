package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"contracthub/internal/model"
	"contracthub/internal/repository"
)

var ErrExtractionFieldsRequired = errors.New("extracted fields are required")

// ExtractionInput carries one extraction log entry.
type ExtractionInput struct {
	ExtractedFields string  `json:"extracted_fields"`
	Status          string  `json:"status"`
	Approver        *string `json:"approver"`
	Actor           string  `json:"actor"`
}

// ExtractionService logs field-extraction results against a contract.
// Entries are insert-only.
type ExtractionService interface {
	Create(ctx context.Context, contractID string, in ExtractionInput) (*model.Extraction, error)
	ListByContract(ctx context.Context, contractID string) ([]model.Extraction, error)
}

type extractionService struct {
	extractions repository.ExtractionRepository
	contracts   repository.ContractRepository
	audit       repository.AuditRepository
	tx          repository.TxManager
}

// NewExtractionService constructs a new ExtractionService.
func NewExtractionService(
	extractions repository.ExtractionRepository,
	contracts repository.ContractRepository,
	audit repository.AuditRepository,
	tx repository.TxManager,
) ExtractionService {
	return &extractionService{extractions: extractions, contracts: contracts, audit: audit, tx: tx}
}

func (s *extractionService) Create(ctx context.Context, contractID string, in ExtractionInput) (*model.Extraction, error) {
	if in.ExtractedFields == "" {
		return nil, ErrExtractionFieldsRequired
	}

	exists, err := s.contracts.Exists(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrContractNotFound
	}

	entry := &model.Extraction{
		ID:              uuid.NewString(),
		ContractID:      contractID,
		ExtractedFields: in.ExtractedFields,
		Status:          in.Status,
		Approver:        in.Approver,
		CreatedAt:       time.Now().UTC(),
	}

	var stored *model.Extraction
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		if stored, createErr = s.extractions.Create(txCtx, entry); createErr != nil {
			return createErr
		}
		return s.audit.Append(txCtx, newAuditEvent(&contractID, "Logged extraction", in.Actor, ""))
	})
	if err != nil {
		if errors.Is(err, repository.ErrMissingContract) {
			return nil, ErrContractNotFound
		}
		return nil, fmt.Errorf("log extraction: %w", err)
	}
	return stored, nil
}

func (s *extractionService) ListByContract(ctx context.Context, contractID string) ([]model.Extraction, error) {
	exists, err := s.contracts.Exists(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrContractNotFound
	}
	return s.extractions.ListByContract(ctx, contractID)
}
