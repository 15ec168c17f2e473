// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"chaintrace/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open an account.
type RegisterInput struct {
	Username       string
	Email          string
	Password       string
	WalletAddress  string
	Role           entity.Role
	Profile        entity.Profile
	CompanyProfile *entity.CompanyProfile
}

// LoginInput identifies the account by email, username or wallet address.
type LoginInput struct {
	Identifier string
	Password   string
}

// UpdateProfileInput carries the editable parts of an account. Nil sections are left as they are.
type UpdateProfileInput struct {
	Profile        *entity.Profile
	CompanyProfile *entity.CompanyProfile
	Preferences    *entity.Preferences
}

// --- Output DTOs ---

// AuthOutput is returned by every call that issues tokens.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
	User         *entity.User
}

// UserUsecase defines the interface for account operations.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	RefreshSession(ctx context.Context, refreshToken string) (*AuthOutput, error)

	// GetProfile resolves userRef as a user id, wallet address or username.
	GetProfile(ctx context.Context, userRef string) (*entity.User, error)
	GetByWallet(ctx context.Context, wallet string) (*entity.User, error)
	UpdateProfile(ctx context.Context, session entity.Session, userRef string, input *UpdateProfileInput) (*entity.User, error)
}
