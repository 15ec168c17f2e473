// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"

	"chaintrace/internal/delivery/http/middleware"
	"chaintrace/internal/delivery/http/response"
	"chaintrace/internal/domain/entity"
	domainerrors "chaintrace/internal/domain/errors"
	"chaintrace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for account handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		uc:     params.UserUC,
		logger: params.Logger,
	}
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username       string                 `json:"username" validate:"required,min=3,max=50"`
	Email          string                 `json:"email" validate:"required,email"`
	Password       string                 `json:"password" validate:"required,min=8"`
	WalletAddress  string                 `json:"walletAddress" validate:"required,ethaddr"`
	Role           string                 `json:"role" validate:"required,oneof=supplier producer customer"`
	Profile        entity.Profile         `json:"profile"`
	CompanyProfile *entity.CompanyProfile `json:"companyProfile"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// RefreshRequest is the body of POST /api/auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// UpdateProfileRequest is the body of PUT /api/user/profile.
type UpdateProfileRequest struct {
	Profile        *entity.Profile        `json:"profile"`
	CompanyProfile *entity.CompanyProfile `json:"companyProfile"`
	Preferences    *entity.Preferences    `json:"preferences"`
}

// Register handles the account registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	role, _ := entity.ParseRole(req.Role)
	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Username:       req.Username,
		Email:          req.Email,
		Password:       req.Password,
		WalletAddress:  req.WalletAddress,
		Role:           role,
		Profile:        req.Profile,
		CompanyProfile: req.CompanyProfile,
	})
	if err != nil {
		return err
	}

	return response.Created(c, newAuthView(output), "User registered successfully")
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Identifier: req.Identifier,
		Password:   req.Password,
	})
	if err != nil {
		return err
	}

	return response.OK(c, newAuthView(output), "Login successful")
}

// RefreshToken handles the token refresh request.
func (h *UserHandler) RefreshToken(c echo.Context) error {
	var req RefreshRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	output, err := h.uc.RefreshSession(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return err
	}

	return response.OK(c, newAuthView(output), "Token refreshed successfully")
}

// GetProfile handles GET /api/user/profile?userId.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userRef := c.QueryParam("userId")
	if userRef == "" {
		return domainerrors.ErrValidationFailed.WithDetails("userId is required")
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userRef)
	if err != nil {
		return err
	}

	return response.OK(c, newUserView(user, viewerOwns(c, user)), "Profile retrieved successfully")
}

// UpdateProfile handles PUT /api/user/profile. Without userId the caller's own account is updated.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	userRef := c.QueryParam("userId")
	if userRef == "" {
		userRef = session.UserID.String()
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), session, userRef, &usecase.UpdateProfileInput{
		Profile:        req.Profile,
		CompanyProfile: req.CompanyProfile,
		Preferences:    req.Preferences,
	})
	if err != nil {
		return err
	}

	return response.OK(c, newUserView(user, viewerOwns(c, user)), "Profile updated successfully")
}

// GetByWallet handles GET /api/users/wallet/:address.
func (h *UserHandler) GetByWallet(c echo.Context) error {
	user, err := h.uc.GetByWallet(c.Request().Context(), c.Param("address"))
	if err != nil {
		return err
	}

	return response.OK(c, newUserView(user, viewerOwns(c, user)), "User retrieved successfully")
}

// viewerOwns reports whether the request's session belongs to user.
func viewerOwns(c echo.Context, user *entity.User) bool {
	session, ok := middleware.CurrentSession(c)

	return ok && user != nil && session.UserID == user.ID
}
