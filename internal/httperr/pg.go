package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgExclusionViolation = "23P01"
	pgUniqueViolation    = "23505"
	pgLockNotAvailable   = "55P03"
)

// IsExclusionConflict reports whether err is the storage-level overlap guard
// firing (exclusion or unique constraint). Callers treat it as a concurrent
// booking, not a system failure.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgExclusionViolation || pgErr.Code == pgUniqueViolation
	}
	return false
}

// IsLockNotAvailable reports a FOR UPDATE NOWAIT miss; retryable.
func IsLockNotAvailable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgLockNotAvailable
	}
	return false
}
