package postgres

import (
	"context"
	"database/sql"

	"contracthub/internal/model"
	"contracthub/internal/repository"
)

// VendorPostgres is the PostgreSQL implementation of
// repository.VendorRepository.
type VendorPostgres struct {
	db *sql.DB
}

// NewVendorPostgres creates a new VendorPostgres repository.
func NewVendorPostgres(db *sql.DB) *VendorPostgres {
	return &VendorPostgres{db: db}
}

var _ repository.VendorRepository = (*VendorPostgres)(nil)

// Create inserts a vendor row and returns the stored record.
func (r *VendorPostgres) Create(ctx context.Context, v *model.Vendor) (*model.Vendor, error) {
	const q = `
		INSERT INTO vendors (id, name, risk_profile, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := querierFrom(ctx, r.db).ExecContext(ctx, q,
		v.ID, v.Name, v.RiskProfile, v.Status, v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	out := *v
	return &out, nil
}

// Update rewrites a vendor's mutable fields.
func (r *VendorPostgres) Update(ctx context.Context, v *model.Vendor) (*model.Vendor, error) {
	const q = `
		UPDATE vendors
		SET name = $1, risk_profile = $2, status = $3
		WHERE id = $4
	`
	res, err := querierFrom(ctx, r.db).ExecContext(ctx, q,
		v.Name, v.RiskProfile, v.Status, v.ID,
	)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, sql.ErrNoRows
	}
	out := *v
	return &out, nil
}

// FindByID fetches a single vendor by id.
func (r *VendorPostgres) FindByID(ctx context.Context, id string) (*model.Vendor, error) {
	const q = `
		SELECT id, name, risk_profile, status, created_at
		FROM vendors
		WHERE id = $1
	`
	var v model.Vendor
	err := querierFrom(ctx, r.db).QueryRowContext(ctx, q, id).
		Scan(&v.ID, &v.Name, &v.RiskProfile, &v.Status, &v.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// List returns all vendors ordered by name.
func (r *VendorPostgres) List(ctx context.Context) ([]model.Vendor, error) {
	const q = `
		SELECT id, name, risk_profile, status, created_at
		FROM vendors
		ORDER BY name
	`
	rows, err := querierFrom(ctx, r.db).QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vendors := make([]model.Vendor, 0)
	for rows.Next() {
		var v model.Vendor
		if err := rows.Scan(&v.ID, &v.Name, &v.RiskProfile, &v.Status, &v.CreatedAt); err != nil {
			return nil, err
		}
		vendors = append(vendors, v)
	}
	return vendors, rows.Err()
}
