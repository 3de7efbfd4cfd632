package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"contracthub/internal/repository"
)

// PostgreSQL error codes the repositories care about.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// mapWriteError translates driver-level constraint failures into repository
// sentinels. sql.ErrNoRows and context errors pass through untouched so
// errors.Is checks in services keep working.
func mapWriteError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return repository.ErrVersionConflict
		case codeForeignKeyViolation:
			return repository.ErrMissingContract
		}
	}
	return err
}
