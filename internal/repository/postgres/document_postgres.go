package postgres

import (
	"context"
	"database/sql"

	"contracthub/internal/model"
	"contracthub/internal/repository"
)

// DocumentPostgres is the PostgreSQL implementation of
// repository.DocumentRepository. Parameterized queries only; no business
// logic. The documents table carries UNIQUE (contract_id, version), which is
// what ultimately serializes concurrent version assignment.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

const documentColumns = `id, contract_id, filename, storage_name, version, uploaded_at, sha256`

// Create inserts a new document row and returns the stored record.
// A lost race on (contract_id, version) surfaces as ErrVersionConflict.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		INSERT INTO documents (id, contract_id, filename, storage_name, version, uploaded_at, sha256)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + documentColumns
	row := querierFrom(ctx, r.db).QueryRowContext(ctx, q,
		doc.ID,
		doc.ContractID,
		doc.Filename,
		doc.StorageName,
		doc.Version,
		doc.UploadedAt,
		doc.SHA256,
	)
	var out model.Document
	if err := scanDocument(row, &out); err != nil {
		return nil, mapWriteError(err)
	}
	return &out, nil
}

// NextVersion computes the next candidate version for a contract.
func (r *DocumentPostgres) NextVersion(ctx context.Context, contractID string) (int, error) {
	const q = `
		SELECT COALESCE(MAX(version), 0) + 1
		FROM documents
		WHERE contract_id = $1
	`
	var next int
	if err := querierFrom(ctx, r.db).QueryRowContext(ctx, q, contractID).Scan(&next); err != nil {
		return 0, err
	}
	return next, nil
}

// ListByContract returns all revisions for a contract, newest version first.
func (r *DocumentPostgres) ListByContract(ctx context.Context, contractID string) ([]model.Document, error) {
	const q = `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE contract_id = $1
		ORDER BY version DESC
	`
	rows, err := querierFrom(ctx, r.db).QueryContext(ctx, q, contractID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := make([]model.Document, 0)
	for rows.Next() {
		var d model.Document
		if err := scanDocument(rows, &d); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}

// FindByStorageName fetches the row addressing the given storage object.
func (r *DocumentPostgres) FindByStorageName(ctx context.Context, storageName string) (*model.Document, error) {
	const q = `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE storage_name = $1
	`
	var d model.Document
	if err := scanDocument(querierFrom(ctx, r.db).QueryRowContext(ctx, q, storageName), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(s scanner, d *model.Document) error {
	return s.Scan(
		&d.ID,
		&d.ContractID,
		&d.Filename,
		&d.StorageName,
		&d.Version,
		&d.UploadedAt,
		&d.SHA256,
	)
}
