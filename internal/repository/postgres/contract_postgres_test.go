package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contracthub/internal/model"
	"contracthub/internal/repository"
)

func contractRows(contracts ...*model.Contract) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "title", "vendor_id", "name", "owner", "state",
		"effective_date", "termination_date", "notice_period_days",
		"renewal_intent", "sensitive", "created_at", "updated_at",
	})
	for _, c := range contracts {
		rows.AddRow(
			c.ID, c.Title, c.VendorID, c.VendorName, c.Owner, c.State,
			c.EffectiveDate, c.TerminationDate, c.NoticePeriodDays,
			c.RenewalIntent, c.Sensitive, c.CreatedAt, c.UpdatedAt,
		)
	}
	return rows
}

func TestContractPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewContractPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	contract := &model.Contract{
		ID:        "contract-uuid",
		Title:     "MSA",
		Owner:     "legal",
		State:     "Draft",
		CreatedAt: now,
		UpdatedAt: now,
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO contracts").
			WillReturnResult(sqlmock.NewResult(0, 1))

		stored, err := repo.Create(ctx, contract)

		assert.NoError(t, err)
		assert.Equal(t, contract.ID, stored.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("dangling vendor id", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO contracts").
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "contracts_vendor_id_fkey"})

		stored, err := repo.Create(ctx, contract)

		assert.Nil(t, stored)
		assert.ErrorIs(t, err, repository.ErrMissingContract)
	})
}

func TestContractPostgres_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewContractPostgres(db)
	ctx := context.Background()

	contract := &model.Contract{
		ID:        "contract-uuid",
		Title:     "MSA v2",
		Owner:     "legal",
		State:     "Active",
		UpdatedAt: time.Now().UTC(),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("UPDATE contracts").
			WillReturnResult(sqlmock.NewResult(0, 1))

		stored, err := repo.Update(ctx, contract)

		assert.NoError(t, err)
		assert.Equal(t, "MSA v2", stored.Title)
	})

	t.Run("missing row", func(t *testing.T) {
		mock.ExpectExec("UPDATE contracts").
			WillReturnResult(sqlmock.NewResult(0, 0))

		stored, err := repo.Update(ctx, contract)

		assert.Nil(t, stored)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestContractPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewContractPostgres(db)
	ctx := context.Background()

	t.Run("joins vendor name", func(t *testing.T) {
		vendorID := "vendor-uuid"
		vendorName := "Acme"
		contract := &model.Contract{
			ID:         "contract-uuid",
			Title:      "MSA",
			VendorID:   &vendorID,
			VendorName: &vendorName,
			Owner:      "legal",
			State:      "Active",
			CreatedAt:  time.Now().UTC(),
			UpdatedAt:  time.Now().UTC(),
		}
		mock.ExpectQuery("SELECT (.+) FROM contracts c LEFT JOIN vendors v").
			WithArgs(contract.ID).
			WillReturnRows(contractRows(contract))

		got, err := repo.FindByID(ctx, contract.ID)

		assert.NoError(t, err)
		require.NotNil(t, got.VendorName)
		assert.Equal(t, "Acme", *got.VendorName)
	})

	t.Run("missing row", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM contracts c LEFT JOIN vendors v").
			WithArgs("nope").
			WillReturnRows(contractRows())

		got, err := repo.FindByID(ctx, "nope")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestContractPostgres_Exists(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewContractPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("contract-uuid").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.Exists(ctx, "contract-uuid")

	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestContractPostgres_CountByState(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewContractPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT state, COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"state", "total"}).
			AddRow("Active", 2).
			AddRow("Draft", 5))

	counts, err := repo.CountByState(ctx)

	assert.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, model.ContractStateCount{State: "Active", Total: 2}, counts[0])
	assert.Equal(t, model.ContractStateCount{State: "Draft", Total: 5}, counts[1])
}
