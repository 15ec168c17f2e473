package middleware

import (
	"slices"
	"strings"

	deliverycontext "chaintrace/internal/delivery/context"
	"chaintrace/internal/delivery/http/response"
	domainerrors "chaintrace/internal/domain/errors"
	"chaintrace/internal/domain/entity"
	"chaintrace/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware resolves the request session from a Bearer access token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || claims.Type != service.TokenTypeAccess {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		session, err := claims.Session()
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid subject in token")
		}

		req := c.Request()
		c.SetRequest(req.WithContext(deliverycontext.WithSession(req.Context(), session)))

		return next(c)
	}
}

// Identify attaches the session when a valid access token is sent and lets
// anonymous or badly authenticated requests through unchanged.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, found := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
		if !found || tokenString == "" {
			return next(c)
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || claims.Type != service.TokenTypeAccess {
			return next(c)
		}
		if session, err := claims.Session(); err == nil {
			req := c.Request()
			c.SetRequest(req.WithContext(deliverycontext.WithSession(req.Context(), session)))
		}

		return next(c)
	}
}

// RequireRole must run after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := CurrentSession(c)
			if !ok || !slices.Contains(roles, session.Role) {
				return domainerrors.ErrRoleNotAllowed.WithDetails("requires role " + joinRoles(roles))
			}

			return next(c)
		}
	}
}

// CurrentSession returns the session stored by Authenticate.
func CurrentSession(c echo.Context) (entity.Session, bool) {
	return deliverycontext.SessionFromContext(c.Request().Context())
}

func joinRoles(roles []entity.Role) string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}

	return strings.Join(names, " or ")
}
