package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"contracthub/internal/model"
	"contracthub/internal/repository"
)

var ErrVendorNameRequired = errors.New("vendor name is required")

// VendorInput carries the caller-editable vendor fields.
type VendorInput struct {
	Name        string  `json:"name"`
	RiskProfile *string `json:"risk_profile"`
	Status      *string `json:"status"`
	Actor       string  `json:"actor"`
}

// VendorService defines vendor CRUD. Vendor mutations audit without a
// contract reference; the vendor id goes into the event details instead.
type VendorService interface {
	Create(ctx context.Context, in VendorInput) (*model.Vendor, error)
	Update(ctx context.Context, id string, in VendorInput) (*model.Vendor, error)
	Get(ctx context.Context, id string) (*model.Vendor, error)
	List(ctx context.Context) ([]model.Vendor, error)
}

type vendorService struct {
	vendors repository.VendorRepository
	audit   repository.AuditRepository
	tx      repository.TxManager
}

// NewVendorService constructs a new VendorService.
func NewVendorService(vendors repository.VendorRepository, audit repository.AuditRepository, tx repository.TxManager) VendorService {
	return &vendorService{vendors: vendors, audit: audit, tx: tx}
}

func (s *vendorService) Create(ctx context.Context, in VendorInput) (*model.Vendor, error) {
	if in.Name == "" {
		return nil, ErrVendorNameRequired
	}

	vendor := &model.Vendor{
		ID:          uuid.NewString(),
		Name:        in.Name,
		RiskProfile: in.RiskProfile,
		Status:      in.Status,
		CreatedAt:   time.Now().UTC(),
	}

	var stored *model.Vendor
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		if stored, createErr = s.vendors.Create(txCtx, vendor); createErr != nil {
			return createErr
		}
		details := fmt.Sprintf("Vendor %s", vendor.ID)
		return s.audit.Append(txCtx, newAuditEvent(nil, "Created vendor", in.Actor, details))
	})
	if err != nil {
		return nil, fmt.Errorf("create vendor: %w", err)
	}
	return stored, nil
}

func (s *vendorService) Update(ctx context.Context, id string, in VendorInput) (*model.Vendor, error) {
	if in.Name == "" {
		return nil, ErrVendorNameRequired
	}

	existing, err := s.vendors.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVendorNotFound
		}
		return nil, err
	}

	vendor := &model.Vendor{
		ID:          existing.ID,
		Name:        in.Name,
		RiskProfile: in.RiskProfile,
		Status:      in.Status,
		CreatedAt:   existing.CreatedAt,
	}

	var stored *model.Vendor
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		if stored, updateErr = s.vendors.Update(txCtx, vendor); updateErr != nil {
			return updateErr
		}
		details := fmt.Sprintf("Vendor %s", vendor.ID)
		return s.audit.Append(txCtx, newAuditEvent(nil, "Updated vendor", in.Actor, details))
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVendorNotFound
		}
		return nil, fmt.Errorf("update vendor: %w", err)
	}
	return stored, nil
}

func (s *vendorService) Get(ctx context.Context, id string) (*model.Vendor, error) {
	vendor, err := s.vendors.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVendorNotFound
		}
		return nil, err
	}
	return vendor, nil
}

func (s *vendorService) List(ctx context.Context) ([]model.Vendor, error) {
	return s.vendors.List(ctx)
}
