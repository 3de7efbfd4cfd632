package postgres

import (
	"context"
	"database/sql"

	"contracthub/internal/model"
	"contracthub/internal/repository"
)

// AuditPostgres is the PostgreSQL implementation of
// repository.AuditRepository. Insert and select only: the audit trail is
// append-only, so no UPDATE or DELETE statement exists in this file.
type AuditPostgres struct {
	db *sql.DB
}

// NewAuditPostgres creates a new AuditPostgres repository.
func NewAuditPostgres(db *sql.DB) *AuditPostgres {
	return &AuditPostgres{db: db}
}

var _ repository.AuditRepository = (*AuditPostgres)(nil)

// Append inserts one audit event, joining any transaction carried by ctx.
func (r *AuditPostgres) Append(ctx context.Context, event *model.AuditEvent) error {
	const q = `
		INSERT INTO audit_events (contract_id, action, actor, created_at, details)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := querierFrom(ctx, r.db).QueryRowContext(ctx, q,
		event.ContractID,
		event.Action,
		event.Actor,
		event.CreatedAt,
		event.Details,
	).Scan(&event.ID)
	return mapWriteError(err)
}

// List returns audit events newest first; insertion order (id) breaks
// created_at ties so the total order is stable.
func (r *AuditPostgres) List(ctx context.Context, contractID *string, pq repository.PageQuery) (*repository.PageResult[model.AuditEvent], error) {
	const qCount = `
		SELECT COUNT(*)
		FROM audit_events
		WHERE $1::uuid IS NULL OR contract_id = $1
	`
	var total int
	if err := querierFrom(ctx, r.db).QueryRowContext(ctx, qCount, contractID).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, contract_id, action, actor, created_at, details
		FROM audit_events
		WHERE $1::uuid IS NULL OR contract_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := querierFrom(ctx, r.db).QueryContext(ctx, qList, contractID, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.AuditEvent, 0)
	for rows.Next() {
		var (
			e       model.AuditEvent
			details sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.ContractID, &e.Action, &e.Actor, &e.CreatedAt, &details); err != nil {
			return nil, err
		}
		e.Details = details.String
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.AuditEvent]{Items: items, Total: total}, nil
}
