package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagPostgres_ReplaceForContract(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewTagPostgres(db)
	ctx := context.Background()

	t.Run("clears then reassociates each name", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM contract_tags").
			WithArgs("c1").
			WillReturnResult(sqlmock.NewResult(0, 2))
		for _, name := range []string{"finance", "msa"} {
			mock.ExpectExec("INSERT INTO tags").
				WithArgs(name).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec("INSERT INTO contract_tags").
				WithArgs("c1", name).
				WillReturnResult(sqlmock.NewResult(0, 1))
		}

		err := repo.ReplaceForContract(ctx, "c1", []string{"finance", "msa"})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty set only clears", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM contract_tags").
			WithArgs("c1").
			WillReturnResult(sqlmock.NewResult(0, 2))

		err := repo.ReplaceForContract(ctx, "c1", nil)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("association failure propagates", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM contract_tags").
			WithArgs("c1").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("INSERT INTO tags").
			WithArgs("finance").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO contract_tags").
			WithArgs("c1", "finance").
			WillReturnError(errors.New("db down"))

		err := repo.ReplaceForContract(ctx, "c1", []string{"finance"})

		assert.Error(t, err)
	})
}

func TestTagPostgres_ListByContract(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewTagPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT tags.name").
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("finance").AddRow("msa"))

	names, err := repo.ListByContract(ctx, "c1")

	assert.NoError(t, err)
	assert.Equal(t, []string{"finance", "msa"}, names)
}
