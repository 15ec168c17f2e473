package impl

import (
	"context"
	"testing"
	"time"

	"chaintrace/internal/domain/entity"
	domainerrors "chaintrace/internal/domain/errors"
	"chaintrace/internal/domain/repository"
	"chaintrace/internal/domain/service"
	mockRepo "chaintrace/internal/mocks/repository"
	mockSvc "chaintrace/internal/mocks/service"
	"chaintrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Username:      "Alice",
		Email:         "Alice@Example.com",
		Password:      "correct-horse",
		WalletAddress: "0xABCDEFabcdef0123456789ABCDEFabcdef012345",
		Role:          entity.RoleProducer,
		Profile:       entity.Profile{DisplayName: "Alice Farms"},
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := validRegisterInput()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Username == "alice" &&
				u.Email == "alice@example.com" &&
				u.WalletAddress == "0xabcdefabcdef0123456789abcdefabcdef012345" &&
				u.PasswordHash == "hashed" &&
				u.IsActive
		})).
		Return(nil)
	fx.tokenService.EXPECT().GenerateTokens(mock.AnythingOfType("entity.Session")).Return("access", "refresh", nil)
	fx.tokenService.EXPECT().GetAccessTokenDuration().Return(15 * time.Minute)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, int64(900), output.ExpiresIn)
	assert.Equal(t, entity.RoleProducer, output.User.Role)
}

func TestUserService_Register_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.RegisterInput)
	}{
		{"logistics cannot self-register", func(in *usecase.RegisterInput) { in.Role = entity.RoleLogistics }},
		{"bad wallet", func(in *usecase.RegisterInput) { in.WalletAddress = "0x123" }},
		{"short password", func(in *usecase.RegisterInput) { in.Password = "short" }},
		{"missing display name", func(in *usecase.RegisterInput) { in.Profile.DisplayName = " " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)
			input := validRegisterInput()
			tt.mutate(input)

			output, err := fx.service.Register(context.Background(), input)

			assert.Nil(t, output)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestUserService_Register_DuplicateWallet(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := validRegisterInput()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(errors.Wrap(repository.ErrDuplicateWallet, "insert user"))

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "walletAddress already registered", appErr.Details())
}

func TestUserService_Login_RoutesIdentifier(t *testing.T) {
	user := testUser(entity.RoleCustomer, testCustomerWallet)
	user.PasswordHash = "hashed"

	tests := []struct {
		name       string
		identifier string
		expect     func(fx userServiceFixtures, ctx context.Context)
	}{
		{
			name:       "wallet",
			identifier: "0x1111111111111111111111111111111111111111",
			expect: func(fx userServiceFixtures, ctx context.Context) {
				fx.userRepo.EXPECT().FindByWallet(ctx, testCustomerWallet).Return(user, nil)
			},
		},
		{
			name:       "email is lower-cased",
			identifier: "Customer@Example.com",
			expect: func(fx userServiceFixtures, ctx context.Context) {
				fx.userRepo.EXPECT().FindByEmail(ctx, "customer@example.com").Return(user, nil)
			},
		},
		{
			name:       "username",
			identifier: "customer-user",
			expect: func(fx userServiceFixtures, ctx context.Context) {
				fx.userRepo.EXPECT().FindByUsername(ctx, "customer-user").Return(user, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)
			ctx := context.Background()
			tt.expect(fx, ctx)
			fx.hasher.EXPECT().Check("secret-pass", "hashed").Return(true)
			fx.tokenService.EXPECT().GenerateTokens(user.Session()).Return("a", "r", nil)
			fx.tokenService.EXPECT().GetAccessTokenDuration().Return(time.Minute)

			output, err := fx.service.Login(ctx, &usecase.LoginInput{Identifier: tt.identifier, Password: "secret-pass"})

			require.NoError(t, err)
			assert.Equal(t, user.ID, output.User.ID)
		})
	}
}

func TestUserService_Login_InvalidCredentials(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "ghost", Password: "whatever1"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		user := testUser(entity.RoleCustomer, testCustomerWallet)
		user.PasswordHash = "hashed"
		fx.userRepo.EXPECT().FindByUsername(ctx, "customer-user").Return(user, nil)
		fx.hasher.EXPECT().Check("wrong-pass", "hashed").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "customer-user", Password: "wrong-pass"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("inactive account", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		user := testUser(entity.RoleCustomer, testCustomerWallet)
		user.IsActive = false
		fx.userRepo.EXPECT().FindByUsername(ctx, "customer-user").Return(user, nil)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "customer-user", Password: "secret-pass"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

func TestUserService_RefreshSession(t *testing.T) {
	t.Run("access token is rejected", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.tokenService.EXPECT().ValidateToken("tok").Return(&service.Claims{Type: service.TokenTypeAccess}, nil)

		_, err := fx.service.RefreshSession(context.Background(), "tok")

		assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	})

	t.Run("reissues from stored account", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		user := testUser(entity.RoleSupplier, testSupplierWallet)
		claims := &service.Claims{Type: service.TokenTypeRefresh}
		claims.Subject = user.ID.String()

		fx.tokenService.EXPECT().ValidateToken("tok").Return(claims, nil)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.tokenService.EXPECT().GenerateTokens(user.Session()).Return("a2", "r2", nil)
		fx.tokenService.EXPECT().GetAccessTokenDuration().Return(time.Minute)

		output, err := fx.service.RefreshSession(ctx, "tok")

		require.NoError(t, err)
		assert.Equal(t, "a2", output.AccessToken)
	})
}

func TestUserService_UpdateProfile_OwnerOnly(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	owner := testUser(entity.RoleCustomer, testCustomerWallet)
	other := testUser(entity.RoleProducer, testProducerWallet)

	fx.userRepo.EXPECT().FindByID(ctx, owner.ID).Return(owner, nil)

	_, err := fx.service.UpdateProfile(ctx, sessionOf(other), owner.ID.String(), &usecase.UpdateProfileInput{
		Profile: &entity.Profile{DisplayName: "Hijacked"},
	})

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestUserService_UpdateProfile_Preferences(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	owner := testUser(entity.RoleCustomer, testCustomerWallet)
	prefs := &entity.Preferences{
		FavoriteCategories: []string{"coffee"},
		PriceRange:         entity.PriceRange{Min: 1, Max: 20},
	}

	fx.userRepo.EXPECT().FindByWallet(ctx, testCustomerWallet).Return(owner, nil)
	fx.userRepo.EXPECT().Update(ctx, owner).Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, sessionOf(owner), testCustomerWallet, &usecase.UpdateProfileInput{Preferences: prefs})

	require.NoError(t, err)
	assert.Equal(t, []string{"coffee"}, updated.Preferences.FavoriteCategories)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, id.String())

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
