package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contracthub/internal/model"
	"contracthub/internal/repository"
)

func TestAuditPostgres_Append(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewAuditPostgres(db)
	ctx := context.Background()

	contractID := "contract-uuid"
	event := &model.AuditEvent{
		ContractID: &contractID,
		Action:     "Uploaded document",
		Actor:      "alice",
		CreatedAt:  time.Now().UTC(),
		Details:    "Document msa.pdf v1",
	}

	mock.ExpectQuery("INSERT INTO audit_events").
		WithArgs(event.ContractID, event.Action, event.Actor, event.CreatedAt, event.Details).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	err = repo.Append(ctx, event)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), event.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewAuditPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	contractID := "contract-uuid"

	t.Run("whole trail", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\)").
			WithArgs(nil).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectQuery("SELECT (.+) FROM audit_events").
			WithArgs(nil, 50, 0).
			WillReturnRows(sqlmock.NewRows([]string{"id", "contract_id", "action", "actor", "created_at", "details"}).
				AddRow(int64(2), contractID, "Uploaded document", "alice", now, "Document msa.pdf v1").
				AddRow(int64(1), nil, "Created vendor", "system", now, "Vendor v1"))

		res, err := repo.List(ctx, nil, repository.PageQuery{Limit: 50, Offset: 0})

		assert.NoError(t, err)
		assert.Equal(t, 2, res.Total)
		require.Len(t, res.Items, 2)
		// Newest first; id breaks the created_at tie.
		assert.Equal(t, int64(2), res.Items[0].ID)
		assert.Nil(t, res.Items[1].ContractID)
	})

	t.Run("filtered by contract", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\)").
			WithArgs(&contractID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery("SELECT (.+) FROM audit_events").
			WithArgs(&contractID, 50, 0).
			WillReturnRows(sqlmock.NewRows([]string{"id", "contract_id", "action", "actor", "created_at", "details"}).
				AddRow(int64(2), contractID, "Uploaded document", "alice", now, nil))

		res, err := repo.List(ctx, &contractID, repository.PageQuery{Limit: 50, Offset: 0})

		assert.NoError(t, err)
		assert.Equal(t, 1, res.Total)
		require.Len(t, res.Items, 1)
		assert.Empty(t, res.Items[0].Details)
	})
}
