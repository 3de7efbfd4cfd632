package postgres

import (
	"context"
	"database/sql"

	"contracthub/internal/model"
	"contracthub/internal/repository"
)

// ContractPostgres is the PostgreSQL implementation of
// repository.ContractRepository.
type ContractPostgres struct {
	db *sql.DB
}

// NewContractPostgres creates a new ContractPostgres repository.
func NewContractPostgres(db *sql.DB) *ContractPostgres {
	return &ContractPostgres{db: db}
}

var _ repository.ContractRepository = (*ContractPostgres)(nil)

const contractColumns = `
	c.id, c.title, c.vendor_id, v.name, c.owner, c.state,
	c.effective_date, c.termination_date, c.notice_period_days,
	c.renewal_intent, c.sensitive, c.created_at, c.updated_at`

// Create inserts a contract row and returns the stored record.
func (r *ContractPostgres) Create(ctx context.Context, c *model.Contract) (*model.Contract, error) {
	const q = `
		INSERT INTO contracts
			(id, title, vendor_id, owner, state, effective_date, termination_date,
			 notice_period_days, renewal_intent, sensitive, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := querierFrom(ctx, r.db).ExecContext(ctx, q,
		c.ID, c.Title, c.VendorID, c.Owner, c.State,
		c.EffectiveDate, c.TerminationDate, c.NoticePeriodDays,
		c.RenewalIntent, c.Sensitive, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return nil, mapWriteError(err)
	}
	out := *c
	return &out, nil
}

// Update rewrites the mutable fields of an existing contract.
func (r *ContractPostgres) Update(ctx context.Context, c *model.Contract) (*model.Contract, error) {
	const q = `
		UPDATE contracts
		SET title = $1, vendor_id = $2, owner = $3, state = $4,
		    effective_date = $5, termination_date = $6, notice_period_days = $7,
		    renewal_intent = $8, sensitive = $9, updated_at = $10
		WHERE id = $11
	`
	res, err := querierFrom(ctx, r.db).ExecContext(ctx, q,
		c.Title, c.VendorID, c.Owner, c.State,
		c.EffectiveDate, c.TerminationDate, c.NoticePeriodDays,
		c.RenewalIntent, c.Sensitive, c.UpdatedAt, c.ID,
	)
	if err != nil {
		return nil, mapWriteError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, sql.ErrNoRows
	}
	out := *c
	return &out, nil
}

// FindByID fetches the contract joined with its vendor name.
func (r *ContractPostgres) FindByID(ctx context.Context, id string) (*model.Contract, error) {
	const q = `
		SELECT ` + contractColumns + `
		FROM contracts c
		LEFT JOIN vendors v ON v.id = c.vendor_id
		WHERE c.id = $1
	`
	var c model.Contract
	if err := scanContract(querierFrom(ctx, r.db).QueryRowContext(ctx, q, id), &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all contracts, newest-updated first.
func (r *ContractPostgres) List(ctx context.Context) ([]model.Contract, error) {
	const q = `
		SELECT ` + contractColumns + `
		FROM contracts c
		LEFT JOIN vendors v ON v.id = c.vendor_id
		ORDER BY c.updated_at DESC
	`
	rows, err := querierFrom(ctx, r.db).QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contracts := make([]model.Contract, 0)
	for rows.Next() {
		var c model.Contract
		if err := scanContract(rows, &c); err != nil {
			return nil, err
		}
		contracts = append(contracts, c)
	}
	return contracts, rows.Err()
}

// Exists reports whether a contract row with the given id is stored.
func (r *ContractPostgres) Exists(ctx context.Context, id string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM contracts WHERE id = $1)`
	var exists bool
	if err := querierFrom(ctx, r.db).QueryRowContext(ctx, q, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// CountByState tallies contracts per lifecycle state.
func (r *ContractPostgres) CountByState(ctx context.Context) ([]model.ContractStateCount, error) {
	const q = `
		SELECT state, COUNT(*) AS total
		FROM contracts
		GROUP BY state
		ORDER BY state
	`
	rows, err := querierFrom(ctx, r.db).QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]model.ContractStateCount, 0)
	for rows.Next() {
		var sc model.ContractStateCount
		if err := rows.Scan(&sc.State, &sc.Total); err != nil {
			return nil, err
		}
		counts = append(counts, sc)
	}
	return counts, rows.Err()
}

func scanContract(s scanner, c *model.Contract) error {
	return s.Scan(
		&c.ID, &c.Title, &c.VendorID, &c.VendorName, &c.Owner, &c.State,
		&c.EffectiveDate, &c.TerminationDate, &c.NoticePeriodDays,
		&c.RenewalIntent, &c.Sensitive, &c.CreatedAt, &c.UpdatedAt,
	)
}
