// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "chaintrace/internal/delivery/context"
	"chaintrace/internal/domain/entity"
	domainerrors "chaintrace/internal/domain/errors"
	"chaintrace/internal/domain/repository"
	"chaintrace/internal/domain/service"
	"chaintrace/internal/errors"
	"chaintrace/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const minPasswordLength = 8

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
	now          func() time.Time
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an active account and signs the caller in.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("role must be one of supplier, producer, customer")
	}
	if !entity.IsWalletAddress(input.WalletAddress) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("walletAddress is not a valid address")
	}
	if len(input.Password) < minPasswordLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("password must be at least 8 characters")
	}
	if strings.TrimSpace(input.Profile.DisplayName) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("profile.displayName is required")
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	now := srv.now()
	user := &entity.User{
		ID:             uuid.New(),
		Username:       entity.NormalizeIdentifier(input.Username),
		Email:          entity.NormalizeIdentifier(input.Email),
		PasswordHash:   hashed,
		WalletAddress:  entity.NormalizeWallet(input.WalletAddress),
		Role:           input.Role,
		Profile:        input.Profile,
		CompanyProfile: input.CompanyProfile,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if field, ok := duplicateField(err); ok {
			srv.log(ctx).Warn("Registration rejected, account exists", slog.String("field", field))

			return nil, domainerrors.ErrUserAlreadyExists.WithDetails(field + " already registered")
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", user.ID), slog.String("role", string(user.Role)))

	return srv.issueTokens(user)
}

func duplicateField(err error) (string, bool) {
	switch {
	case errors.Is(err, repository.ErrDuplicateUsername):
		return "username", true
	case errors.Is(err, repository.ErrDuplicateEmail):
		return "email", true
	case errors.Is(err, repository.ErrDuplicateWallet):
		return "walletAddress", true
	case errors.Is(err, domainerrors.ErrUserAlreadyExists):
		return "account", true
	default:
		return "", false
	}
}

// Login accepts an email, username or wallet as identifier.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	identifier := entity.NormalizeIdentifier(input.Identifier)

	var (
		user *entity.User
		err  error
	)
	switch {
	case entity.IsWalletAddress(identifier):
		user, err = srv.userRepo.FindByWallet(ctx, identifier)
	case strings.Contains(identifier, "@"):
		user, err = srv.userRepo.FindByEmail(ctx, identifier)
	default:
		user, err = srv.userRepo.FindByUsername(ctx, identifier)
	}
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if !user.IsActive || !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issueTokens(user)
}

// RefreshSession exchanges a refresh token for a new pair. Role and wallet are
// reloaded so the new access token reflects the stored account.
func (srv *userService) RefreshSession(ctx context.Context, refreshToken string) (*usecase.AuthOutput, error) {
	claims, err := srv.tokenService.ValidateToken(refreshToken)
	if err != nil || claims.Type != service.TokenTypeRefresh {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for refresh")
	}

	return srv.issueTokens(user)
}

func (srv *userService) issueTokens(user *entity.User) (*usecase.AuthOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.Session())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(srv.tokenService.GetAccessTokenDuration().Seconds()),
		User:         user,
	}, nil
}

func (srv *userService) GetProfile(ctx context.Context, userRef string) (*entity.User, error) {
	return resolveUser(ctx, srv.userRepo, userRef)
}

func (srv *userService) GetByWallet(ctx context.Context, wallet string) (*entity.User, error) {
	user, err := srv.userRepo.FindByWallet(ctx, entity.NormalizeWallet(wallet))
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by wallet")
	}

	return user, nil
}

// UpdateProfile lets a user edit their own account only.
func (srv *userService) UpdateProfile(ctx context.Context, session entity.Session, userRef string, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := resolveUser(ctx, srv.userRepo, userRef)
	if err != nil {
		return nil, err
	}
	if user.ID != session.UserID {
		return nil, domainerrors.ErrForbidden.WithDetails("profiles can only be edited by their owner")
	}

	if input.Profile != nil {
		if strings.TrimSpace(input.Profile.DisplayName) == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("profile.displayName is required")
		}
		user.Profile = *input.Profile
	}
	if input.CompanyProfile != nil {
		user.CompanyProfile = input.CompanyProfile
	}
	if input.Preferences != nil {
		if r := input.Preferences.PriceRange; !r.IsZero() && r.Max > 0 && r.Min > r.Max {
			return nil, domainerrors.ErrValidationFailed.WithDetails("preferences.priceRange.min exceeds max")
		}
		user.Preferences = *input.Preferences
	}
	user.UpdatedAt = srv.now()

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return user, nil
}

// resolveUser accepts a user id, a wallet address or a username.
func resolveUser(ctx context.Context, repo repository.UserRepository, userRef string) (*entity.User, error) {
	ref := strings.TrimSpace(userRef)
	if ref == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("userId is required")
	}

	var (
		user *entity.User
		err  error
	)
	if id, parseErr := uuid.Parse(ref); parseErr == nil {
		user, err = repo.FindByID(ctx, id)
	} else if entity.IsWalletAddress(ref) {
		user, err = repo.FindByWallet(ctx, entity.NormalizeWallet(ref))
	} else {
		user, err = repo.FindByUsername(ctx, entity.NormalizeIdentifier(ref))
	}

	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve user")
	}

	return user, nil
}
