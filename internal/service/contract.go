package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"contracthub/internal/model"
	"contracthub/internal/repository"
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrOwnerRequired = errors.New("owner is required")
	ErrInvalidState  = errors.New("state is not an allowed contract state")
	ErrVendorNotFound = errors.New("vendor not found")
)

// ContractInput carries the caller-editable contract fields. Tags is the raw
// comma-separated tag string; the full set is replaced on every save.
type ContractInput struct {
	Title            string  `json:"title"`
	VendorID         *string `json:"vendor_id"`
	Owner            string  `json:"owner"`
	State            string  `json:"state"`
	EffectiveDate    *string `json:"effective_date"`
	TerminationDate  *string `json:"termination_date"`
	NoticePeriodDays *int    `json:"notice_period_days"`
	RenewalIntent    *string `json:"renewal_intent"`
	Sensitive        bool    `json:"sensitive"`
	Tags             string  `json:"tags"`
	Actor            string  `json:"actor"`
}

// ContractService defines contract CRUD. Each mutation commits its audit
// event and tag replacement in the same transaction as the contract row.
type ContractService interface {
	Create(ctx context.Context, in ContractInput) (*model.Contract, error)
	Update(ctx context.Context, id string, in ContractInput) (*model.Contract, error)
	Get(ctx context.Context, id string) (*model.Contract, error)
	List(ctx context.Context) ([]model.Contract, error)
	Stats(ctx context.Context) ([]model.ContractStateCount, error)
}

type contractService struct {
	contracts repository.ContractRepository
	tags      repository.TagRepository
	audit     repository.AuditRepository
	tx        repository.TxManager
}

// NewContractService constructs a new ContractService.
func NewContractService(
	contracts repository.ContractRepository,
	tags repository.TagRepository,
	audit repository.AuditRepository,
	tx repository.TxManager,
) ContractService {
	return &contractService{contracts: contracts, tags: tags, audit: audit, tx: tx}
}

func validateContractInput(in ContractInput) error {
	if in.Title == "" {
		return ErrTitleRequired
	}
	if in.Owner == "" {
		return ErrOwnerRequired
	}
	if !slices.Contains(model.ContractStates, in.State) {
		return ErrInvalidState
	}
	return nil
}

func (s *contractService) Create(ctx context.Context, in ContractInput) (*model.Contract, error) {
	if err := validateContractInput(in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	contract := &model.Contract{
		ID:               uuid.NewString(),
		Title:            in.Title,
		VendorID:         in.VendorID,
		Owner:            in.Owner,
		State:            in.State,
		EffectiveDate:    in.EffectiveDate,
		TerminationDate:  in.TerminationDate,
		NoticePeriodDays: in.NoticePeriodDays,
		RenewalIntent:    in.RenewalIntent,
		Sensitive:        in.Sensitive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	var stored *model.Contract
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		if stored, createErr = s.contracts.Create(txCtx, contract); createErr != nil {
			return createErr
		}
		if err := s.tags.ReplaceForContract(txCtx, contract.ID, normalizeTagNames(ParseTagList(in.Tags))); err != nil {
			return err
		}
		return s.audit.Append(txCtx, newAuditEvent(&contract.ID, "Created contract", in.Actor, ""))
	})
	if err != nil {
		if errors.Is(err, repository.ErrMissingContract) {
			// The only FK a contract insert can dangle is the vendor.
			return nil, ErrVendorNotFound
		}
		return nil, fmt.Errorf("create contract: %w", err)
	}
	return stored, nil
}

func (s *contractService) Update(ctx context.Context, id string, in ContractInput) (*model.Contract, error) {
	if err := validateContractInput(in); err != nil {
		return nil, err
	}

	existing, err := s.contracts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrContractNotFound
		}
		return nil, err
	}

	contract := &model.Contract{
		ID:               existing.ID,
		Title:            in.Title,
		VendorID:         in.VendorID,
		Owner:            in.Owner,
		State:            in.State,
		EffectiveDate:    in.EffectiveDate,
		TerminationDate:  in.TerminationDate,
		NoticePeriodDays: in.NoticePeriodDays,
		RenewalIntent:    in.RenewalIntent,
		Sensitive:        in.Sensitive,
		CreatedAt:        existing.CreatedAt,
		UpdatedAt:        time.Now().UTC(),
	}

	var stored *model.Contract
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		if stored, updateErr = s.contracts.Update(txCtx, contract); updateErr != nil {
			return updateErr
		}
		if err := s.tags.ReplaceForContract(txCtx, contract.ID, normalizeTagNames(ParseTagList(in.Tags))); err != nil {
			return err
		}
		return s.audit.Append(txCtx, newAuditEvent(&contract.ID, "Updated contract", in.Actor, ""))
	})
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrContractNotFound
		case errors.Is(err, repository.ErrMissingContract):
			return nil, ErrVendorNotFound
		}
		return nil, fmt.Errorf("update contract: %w", err)
	}
	return stored, nil
}

func (s *contractService) Get(ctx context.Context, id string) (*model.Contract, error) {
	contract, err := s.contracts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrContractNotFound
		}
		return nil, err
	}
	return contract, nil
}

func (s *contractService) List(ctx context.Context) ([]model.Contract, error) {
	return s.contracts.List(ctx)
}

func (s *contractService) Stats(ctx context.Context) ([]model.ContractStateCount, error) {
	return s.contracts.CountByState(ctx)
}
