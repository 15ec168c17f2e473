package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"chaintrace/config"
	domainerrors "chaintrace/internal/domain/errors"
	"chaintrace/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_MiddlewareLabelsByRouteAndStatus(t *testing.T) {
	m := New(&config.Config{})
	e := echo.New()
	e.Use(m.Middleware)
	e.GET("/api/purchases/:id", func(c echo.Context) error {
		if c.Param("id") == "missing" {
			return domainerrors.ErrPurchaseNotFound
		}

		return c.NoContent(http.StatusOK)
	})

	for _, id := range []string{"PUR-1", "missing"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/purchases/"+id, nil))
	}

	assert.InDelta(t, 1, testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/api/purchases/:id", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/api/purchases/:id", "404")), 0)
}

func TestMetrics_DomainCountersExposed(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "chain-trace"
	m := New(cfg)

	m.PurchaseCreated()
	m.TrackingEventAppended("purchase", "shipped")
	m.NotificationDelivered(service.NotificationSent)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "chain_trace_purchases_created_total 1"))
	assert.True(t, strings.Contains(body, `chain_trace_tracking_events_total{status="shipped",target="purchase"} 1`))
	assert.True(t, strings.Contains(body, `chain_trace_notifications_total{outcome="sent"} 1`))
}
