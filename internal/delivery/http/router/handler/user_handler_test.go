package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"chaintrace/internal/domain/entity"
	domainerrors "chaintrace/internal/domain/errors"
	mockUC "chaintrace/internal/mocks/usecase"
	"chaintrace/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserRoutes(t *testing.T) (*testServer, *mockUC.MockUserUsecase) {
	srv := newTestServer(t, testProducer)
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: uc, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})

	srv.echo.POST("/api/auth/register", h.Register)
	srv.echo.POST("/api/auth/login", h.Login)
	srv.echo.GET("/api/user/profile", h.GetProfile, srv.auth.Identify)
	srv.echo.PUT("/api/user/profile", h.UpdateProfile, srv.auth.Authenticate)
	srv.echo.GET("/api/users/wallet/:address", h.GetByWallet, srv.auth.Identify)

	return srv, uc
}

func producerAccount() *entity.User {
	return &entity.User{
		ID:            testProducer.UserID,
		Username:      "roastery",
		Email:         "ops@roastery.example",
		WalletAddress: testProducer.WalletAddress,
		Role:          entity.RoleProducer,
		Profile:       entity.Profile{DisplayName: "Roastery"},
		Preferences: entity.Preferences{
			Wishlist: []string{"p1"},
			Cart:     []entity.CartItem{{ProductID: "p2", Quantity: 3}},
		},
		IsActive: true,
	}
}

func registration() map[string]any {
	return map[string]any{
		"username":      "roastery",
		"email":         "ops@roastery.example",
		"password":      "s3cret-pass",
		"walletAddress": testProducer.WalletAddress,
		"role":          "producer",
	}
}

func TestUserHandler_Register(t *testing.T) {
	srv, uc := newUserRoutes(t)

	uc.EXPECT().Register(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterInput) bool {
		return in.Role == entity.RoleProducer && in.WalletAddress == testProducer.WalletAddress
	})).Return(&usecase.AuthOutput{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900, User: producerAccount()}, nil).Once()

	rec := srv.do(t, http.MethodPost, "/api/auth/register", registration(), false)

	require.Equal(t, http.StatusCreated, rec.Code)
	data := decode(t, rec).Data.(map[string]any)
	assert.Equal(t, "access", data["accessToken"])
	assert.Equal(t, "ops@roastery.example", data["user"].(map[string]any)["email"])
}

func TestUserHandler_Register_DuplicateNamesField(t *testing.T) {
	srv, uc := newUserRoutes(t)

	uc.EXPECT().Register(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrUserAlreadyExists.WithDetails("walletAddress already registered"))

	rec := srv.do(t, http.MethodPost, "/api/auth/register", registration(), false)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "USER_ALREADY_EXISTS", errorCode(resp))
	assert.Equal(t, "walletAddress already registered", resp.Error.Details)
}

func TestUserHandler_Register_Validation(t *testing.T) {
	srv, _ := newUserRoutes(t)

	body := registration()
	body["walletAddress"] = "0xnot-a-wallet"
	body["role"] = "logistics"

	rec := srv.do(t, http.MethodPost, "/api/auth/register", body, false)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(resp))
	assert.Contains(t, resp.Error.Details, "walletAddress must be a hex wallet address")
	assert.Contains(t, resp.Error.Details, "role must be one of [supplier producer customer]")
}

func TestUserHandler_Login(t *testing.T) {
	mixedCase := "0xAbCdEf0123456789aBcDeF0123456789AbCdEf01"

	t.Run("wallet identifier is passed through", func(t *testing.T) {
		srv, uc := newUserRoutes(t)
		uc.EXPECT().Login(mock.Anything, &usecase.LoginInput{Identifier: mixedCase, Password: "s3cret-pass"}).
			Return(&usecase.AuthOutput{AccessToken: "access", User: producerAccount()}, nil)

		rec := srv.do(t, http.MethodPost, "/api/auth/login", map[string]string{
			"identifier": mixedCase, "password": "s3cret-pass",
		}, false)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Login successful", decode(t, rec).Message)
	})

	t.Run("bad credentials", func(t *testing.T) {
		srv, uc := newUserRoutes(t)
		uc.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

		rec := srv.do(t, http.MethodPost, "/api/auth/login", map[string]string{
			"identifier": mixedCase, "password": "wrong",
		}, false)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", errorCode(decode(t, rec)))
	})
}

func TestUserHandler_GetProfile_RequiresUserID(t *testing.T) {
	srv, _ := newUserRoutes(t)

	rec := srv.do(t, http.MethodGet, "/api/user/profile", nil, false)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(resp))
	assert.Equal(t, "userId is required", resp.Error.Details)
}

func TestUserHandler_PrivateFieldsOnlyForOwner(t *testing.T) {
	tests := []struct {
		name          string
		target        string
		authenticated bool
		wantPrivate   bool
	}{
		{name: "anonymous profile", target: "/api/user/profile?userId=roastery", wantPrivate: false},
		{name: "owner profile", target: "/api/user/profile?userId=roastery", authenticated: true, wantPrivate: true},
		{name: "anonymous wallet lookup", target: "/api/users/wallet/" + testProducer.WalletAddress, wantPrivate: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, uc := newUserRoutes(t)
			uc.EXPECT().GetProfile(mock.Anything, "roastery").Return(producerAccount(), nil).Maybe()
			uc.EXPECT().GetByWallet(mock.Anything, testProducer.WalletAddress).Return(producerAccount(), nil).Maybe()

			rec := srv.do(t, http.MethodGet, tt.target, nil, tt.authenticated)

			require.Equal(t, http.StatusOK, rec.Code)
			data := decode(t, rec).Data.(map[string]any)
			assert.Equal(t, "roastery", data["username"])
			_, hasEmail := data["email"]
			_, hasPrefs := data["preferences"]
			assert.Equal(t, tt.wantPrivate, hasEmail)
			assert.Equal(t, tt.wantPrivate, hasPrefs)
		})
	}
}

func TestUserHandler_GetByWallet_NotFound(t *testing.T) {
	srv, uc := newUserRoutes(t)
	uc.EXPECT().GetByWallet(mock.Anything, "0xdead").Return(nil, domainerrors.ErrUserNotFound)

	rec := srv.do(t, http.MethodGet, "/api/users/wallet/0xdead", nil, false)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "USER_NOT_FOUND", errorCode(decode(t, rec)))
}

func TestUserHandler_UpdateProfile_DefaultsToCaller(t *testing.T) {
	srv, uc := newUserRoutes(t)

	updated := producerAccount()
	updated.Profile.Bio = "Single-origin beans"
	uc.EXPECT().UpdateProfile(mock.Anything, testProducer, testProducer.UserID.String(), mock.MatchedBy(func(in *usecase.UpdateProfileInput) bool {
		return in.Profile != nil && in.Profile.Bio == "Single-origin beans" && in.Preferences == nil
	})).Return(updated, nil)

	rec := srv.do(t, http.MethodPut, "/api/user/profile", map[string]any{
		"profile": map[string]string{"displayName": "Roastery", "bio": "Single-origin beans"},
	}, true)

	require.Equal(t, http.StatusOK, rec.Code)
	data := decode(t, rec).Data.(map[string]any)
	assert.Equal(t, "Single-origin beans", data["profile"].(map[string]any)["bio"])
	assert.Contains(t, data, "email")
}
