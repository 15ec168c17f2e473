package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"chaintrace/internal/delivery/http/middleware"
	"chaintrace/internal/delivery/http/response"
	"chaintrace/internal/delivery/http/validator"
	"chaintrace/internal/domain/entity"
	"chaintrace/internal/domain/service"
	mockSvc "chaintrace/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testToken = "test-access-token"

var testProducer = entity.Session{
	UserID:        uuid.MustParse("0b4c5f0e-7a59-4d44-8d3a-2f6a2b0c9e11"),
	WalletAddress: "0x2222222222222222222222222222222222222222",
	Role:          entity.RoleProducer,
}

type testServer struct {
	echo *echo.Echo
	auth *middleware.AuthMiddleware
}

// newTestServer mirrors the production error handler and validator. Every request
// carrying testToken authenticates as session.
func newTestServer(t *testing.T, session entity.Session) *testServer {
	t.Helper()

	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken(testToken).Return(&service.Claims{
		Wallet: session.WalletAddress,
		Role:   string(session.Role),
		Type:   service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: session.UserID.String(),
		},
	}, nil).Maybe()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	return &testServer{echo: e, auth: middleware.NewAuthMiddleware(tokens)}
}

func (s *testServer) do(t *testing.T, method, target string, body any, authenticated bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authenticated {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func errorCode(resp response.Response) string {
	if resp.Error == nil {
		return ""
	}

	return resp.Error.Code
}
