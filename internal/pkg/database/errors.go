package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/pioneer-funding/server/internal/pkg/apperror"
)

const uniqueViolation = "23505"

// WrapError turns driver errors into the shared error kinds: no rows is
// ErrNotFound and a unique violation is ErrConflict. op reads as the verb
// phrase after "failed to".
func WrapError(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, apperror.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w", op, apperror.ErrConflict)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
