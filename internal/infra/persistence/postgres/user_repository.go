// Package postgres implements the repositories on GORM and PostgreSQL.
package postgres

import (
	"context"

	"chaintrace/internal/domain/entity"
	domainerrors "chaintrace/internal/domain/errors"
	"chaintrace/internal/domain/repository"
	"chaintrace/internal/errors"
	"chaintrace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *userRepository) FindByWallet(ctx context.Context, wallet string) (*entity.User, error) {
	return repo.findOne(ctx, "wallet_address = ?", entity.NormalizeWallet(wallet))
}

func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findOne(ctx, "username = ?", entity.NormalizeIdentifier(username))
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "email = ?", entity.NormalizeIdentifier(email))
}

func (repo *userRepository) findOne(ctx context.Context, where string, arg any) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).
		Where(where, arg).
		Where("is_active = ?", true).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user. The three unique indexes are told apart by name.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			return duplicateUserError(constraint)
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.Username = userM.Username
	user.Email = userM.Email
	user.WalletAddress = userM.WalletAddress
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"profile":         userM.Profile,
			"company_profile": userM.CompanyProfile,
			"preferences":     userM.Preferences,
			"is_active":       userM.IsActive,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func duplicateUserError(constraint string) error {
	switch constraint {
	case model.IndexUsersUsername:
		return repository.ErrDuplicateUsername
	case model.IndexUsersEmail:
		return repository.ErrDuplicateEmail
	case model.IndexUsersWallet:
		return repository.ErrDuplicateWallet
	default:
		return domainerrors.ErrUserAlreadyExists
	}
}
