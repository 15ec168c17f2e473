package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"chaintrace/config"
	"chaintrace/internal/delivery/http/middleware"
	"chaintrace/internal/delivery/http/router/handler"
	"chaintrace/internal/domain/entity"
	"chaintrace/internal/domain/service"
	"chaintrace/internal/infra/metrics"
	mockSvc "chaintrace/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestEcho(t *testing.T, cfg *config.Config, m *metrics.Metrics) *echo.Echo {
	t.Helper()

	return newTestEchoWithTokens(t, cfg, m, mockSvc.NewMockTokenService(t))
}

func newTestEchoWithTokens(t *testing.T, cfg *config.Config, m *metrics.Metrics, tokens *mockSvc.MockTokenService) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		UserHandler:           handler.NewUserHandler(handler.UserHandlerParams{Logger: logger}),
		ProductHandler:        handler.NewProductHandler(handler.ProductHandlerParams{Logger: logger}),
		RawMaterialHandler:    handler.NewRawMaterialHandler(handler.RawMaterialHandlerParams{Logger: logger}),
		PurchaseHandler:       handler.NewPurchaseHandler(handler.PurchaseHandlerParams{Logger: logger}),
		TrackingHandler:       handler.NewTrackingHandler(handler.TrackingHandlerParams{Logger: logger}),
		RecommendationHandler: handler.NewRecommendationHandler(handler.RecommendationHandlerParams{Logger: logger}),
		AuthMiddleware:        middleware.NewAuthMiddleware(tokens),
		Metrics:               m,
		Config:                cfg,
	}).RegisterRoutes(e)

	return e
}

func TestRouter_StatusForUnroutedRequests(t *testing.T) {
	e := newTestEcho(t, &config.Config{}, nil)

	tests := []struct {
		method string
		target string
		status int
		body   string
	}{
		{http.MethodGet, "/health", http.StatusOK, `"status":"ok"`},
		{http.MethodGet, "/api/purchase/create", http.StatusMethodNotAllowed, `"METHOD_NOT_ALLOWED"`},
		{http.MethodDelete, "/api/tracking/PUR-1", http.StatusMethodNotAllowed, `"METHOD_NOT_ALLOWED"`},
		{http.MethodGet, "/api/nowhere", http.StatusNotFound, `"NOT_FOUND"`},
		{http.MethodPost, "/api/tracking/update", http.StatusUnauthorized, `"UNAUTHORIZED"`},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.body)
		})
	}
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"}}
	e := newTestEcho(t, cfg, metrics.New(cfg))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestRouter_ProducerOnlyRoutes(t *testing.T) {
	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken("supplier-token").Return(&service.Claims{
		Wallet:           "0x00000000000000000000000000000000000000aa",
		Role:             string(entity.RoleSupplier),
		Type:             service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{Subject: uuid.NewString()},
	}, nil)
	e := newTestEchoWithTokens(t, &config.Config{}, nil, tokens)

	for _, target := range []string{"/api/addProduct", "/api/products/enhanced", "/api/rawmaterial/purchase"} {
		t.Run(target, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, target, nil)
			req.Header.Set(echo.HeaderAuthorization, "Bearer supplier-token")
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Contains(t, rec.Body.String(), `"ROLE_NOT_ALLOWED"`)
		})
	}
}
