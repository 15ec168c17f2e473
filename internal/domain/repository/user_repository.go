// Package repository defines the persistence contracts used by the use case layer.
package repository

import (
	"context"

	"chaintrace/internal/domain/entity"
	"chaintrace/internal/errors"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already taken")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateWallet   = errors.New("wallet address already registered")
)

// UserRepository persists accounts. Lookups by username, email and wallet expect
// lower-cased input and only return active users.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByWallet(ctx context.Context, wallet string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create inserts user. Unique violations map to the ErrDuplicate* sentinels.
	Create(ctx context.Context, user *entity.User) error

	// Update saves profile, company profile, preferences and the active flag.
	Update(ctx context.Context, user *entity.User) error
}
