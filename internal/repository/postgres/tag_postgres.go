package postgres

import (
	"context"
	"database/sql"

	"contracthub/internal/repository"
)

// TagPostgres is the PostgreSQL implementation of repository.TagRepository.
// The tags table enforces exact-string (case-sensitive) uniqueness on name;
// vocabulary rows are never deleted, only associations are.
type TagPostgres struct {
	db *sql.DB
}

// NewTagPostgres creates a new TagPostgres repository.
func NewTagPostgres(db *sql.DB) *TagPostgres {
	return &TagPostgres{db: db}
}

var _ repository.TagRepository = (*TagPostgres)(nil)

// ReplaceForContract swaps the contract's full tag set. Run inside a
// TxManager transaction: either the whole replacement commits or the old set
// stays intact.
func (r *TagPostgres) ReplaceForContract(ctx context.Context, contractID string, names []string) error {
	q := querierFrom(ctx, r.db)

	const qClear = `DELETE FROM contract_tags WHERE contract_id = $1`
	if _, err := q.ExecContext(ctx, qClear, contractID); err != nil {
		return err
	}

	const qVocab = `
		INSERT INTO tags (id, name)
		VALUES (uuid_generate_v4(), $1)
		ON CONFLICT (name) DO NOTHING
	`
	const qAssoc = `
		INSERT INTO contract_tags (contract_id, tag_id)
		SELECT $1, id FROM tags WHERE name = $2
		ON CONFLICT (contract_id, tag_id) DO NOTHING
	`
	for _, name := range names {
		if _, err := q.ExecContext(ctx, qVocab, name); err != nil {
			return err
		}
		if _, err := q.ExecContext(ctx, qAssoc, contractID, name); err != nil {
			return mapWriteError(err)
		}
	}
	return nil
}

// ListByContract returns the contract's tag names sorted ascending.
func (r *TagPostgres) ListByContract(ctx context.Context, contractID string) ([]string, error) {
	const q = `
		SELECT tags.name
		FROM tags
		JOIN contract_tags ON contract_tags.tag_id = tags.id
		WHERE contract_tags.contract_id = $1
		ORDER BY tags.name
	`
	rows, err := querierFrom(ctx, r.db).QueryContext(ctx, q, contractID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
