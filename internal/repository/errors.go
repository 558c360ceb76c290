package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"edulegit_service/internal/errdefs"
)

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func handleError(err error) error {
	if isUniqueViolation(err) {
		return errdefs.ErrAlreadyExists
	}
	if errors.Is(err, sql.ErrNoRows) {
		return errdefs.ErrNotFound
	}
	return fmt.Errorf("repository error: %w", err)
}
