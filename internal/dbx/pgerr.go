package dbx

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/croissant/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the Postgres SQLSTATE for a unique constraint violation.
const uniqueViolation = "23505"

// MapError tags known Postgres failures with repository sentinels. A unique
// violation matches common.ErrAlreadyExists while keeping the original
// *pgconn.PgError reachable through errors.As. Other errors are returned as is.
func MapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %w", common.ErrAlreadyExists, err)
	}
	return err
}
