package postgres

import (
	"strings"

	"chaintrace/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE codes the repositories translate.
const (
	sqlStateUniqueViolation  = "23505"
	sqlStateNotNullViolation = "23502"
)

// uniqueViolation reports whether err is a unique-constraint failure and, when the
// driver exposes it, which constraint was violated.
func uniqueViolation(err error) (constraint string, ok bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == sqlStateUniqueViolation {
		return pgErr.ConstraintName, true
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return "", true
	}

	return "", false
}

func isNotNullConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == sqlStateNotNullViolation
	}

	return strings.Contains(strings.ToLower(err.Error()), "not-null constraint")
}
