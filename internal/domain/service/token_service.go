package service

import (
	"time"

	"chaintrace/internal/domain/entity"
	"chaintrace/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims are the JWT claims issued for a session. The subject is the user id.
type Claims struct {
	Wallet string `json:"wallet,omitempty"`
	Role   string `json:"role,omitempty"`
	Type   string `json:"type"`
	jwt.RegisteredClaims
}

// Session rebuilds the request identity from access-token claims.
func (c *Claims) Session() (entity.Session, error) {
	userID, err := uuid.Parse(c.Subject)
	if err != nil {
		return entity.Session{}, errors.Wrap(err, "invalid subject claim")
	}

	return entity.Session{
		UserID:        userID,
		WalletAddress: c.Wallet,
		Role:          entity.Role(c.Role),
	}, nil
}

// TokenService issues and validates session tokens.
type TokenService interface {
	// GenerateTokens creates an access/refresh pair for session.
	GenerateTokens(session entity.Session) (accessToken string, refreshToken string, err error)

	// ValidateToken parses tokenString and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)

	// GetAccessTokenDuration returns the configured access token lifetime.
	GetAccessTokenDuration() time.Duration
}
