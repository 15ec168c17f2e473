package postgres

import (
	"fmt"
	"testing"

	domainerrors "chaintrace/internal/domain/errors"
	"chaintrace/internal/domain/repository"
	"chaintrace/internal/infra/persistence/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUniqueViolation(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: sqlStateUniqueViolation, ConstraintName: model.IndexPurchasesTxHash}

	constraint, ok := uniqueViolation(fmt.Errorf("insert: %w", pgErr))
	assert.True(t, ok)
	assert.Equal(t, model.IndexPurchasesTxHash, constraint)

	constraint, ok = uniqueViolation(gorm.ErrDuplicatedKey)
	assert.True(t, ok)
	assert.Empty(t, constraint)

	_, ok = uniqueViolation(&pgconn.PgError{Code: "23503"})
	assert.False(t, ok)
}

func TestDuplicateUserError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, repository.ErrDuplicateUsername, duplicateUserError(model.IndexUsersUsername))
	assert.Equal(t, repository.ErrDuplicateEmail, duplicateUserError(model.IndexUsersEmail))
	assert.Equal(t, repository.ErrDuplicateWallet, duplicateUserError(model.IndexUsersWallet))
	assert.ErrorIs(t, duplicateUserError(""), domainerrors.ErrUserAlreadyExists)
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: sqlStateNotNullViolation}))
	assert.False(t, isNotNullConstraintViolation(&pgconn.PgError{Code: sqlStateUniqueViolation}))
}
