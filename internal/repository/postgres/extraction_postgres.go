package postgres

import (
	"context"
	"database/sql"

	"contracthub/internal/model"
	"contracthub/internal/repository"
)

// ExtractionPostgres is the PostgreSQL implementation of
// repository.ExtractionRepository. Entries are insert-only.
type ExtractionPostgres struct {
	db *sql.DB
}

// NewExtractionPostgres creates a new ExtractionPostgres repository.
func NewExtractionPostgres(db *sql.DB) *ExtractionPostgres {
	return &ExtractionPostgres{db: db}
}

var _ repository.ExtractionRepository = (*ExtractionPostgres)(nil)

// Create inserts an extraction log entry.
func (r *ExtractionPostgres) Create(ctx context.Context, e *model.Extraction) (*model.Extraction, error) {
	const q = `
		INSERT INTO extractions (id, contract_id, extracted_fields, status, approver, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := querierFrom(ctx, r.db).ExecContext(ctx, q,
		e.ID, e.ContractID, e.ExtractedFields, e.Status, e.Approver, e.CreatedAt,
	)
	if err != nil {
		return nil, mapWriteError(err)
	}
	out := *e
	return &out, nil
}

// ListByContract returns a contract's extraction entries, newest first.
func (r *ExtractionPostgres) ListByContract(ctx context.Context, contractID string) ([]model.Extraction, error) {
	const q = `
		SELECT id, contract_id, extracted_fields, status, approver, created_at
		FROM extractions
		WHERE contract_id = $1
		ORDER BY created_at DESC
	`
	rows, err := querierFrom(ctx, r.db).QueryContext(ctx, q, contractID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]model.Extraction, 0)
	for rows.Next() {
		var e model.Extraction
		if err := rows.Scan(&e.ID, &e.ContractID, &e.ExtractedFields, &e.Status, &e.Approver, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
