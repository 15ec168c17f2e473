// Package metrics exposes Prometheus counters for HTTP traffic and supply-chain events.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"chaintrace/config"
	"chaintrace/internal/domain/service"
	"chaintrace/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so tests and multiple binaries never collide on
// the global one.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	purchases           prometheus.Counter
	materialPayments    prometheus.Counter
	trackingEvents      *prometheus.CounterVec
	notifications       *prometheus.CounterVec
}

var _ service.MetricsRecorder = (*Metrics)(nil)

// New registers every collector under the configured service name.
func New(cfg *config.Config) *Metrics {
	namespace := "chaintrace"
	if cfg != nil && cfg.Env.ServiceName != "" {
		namespace = sanitize(cfg.Env.ServiceName)
	}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		purchases: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "purchases_created_total",
			Help:      "Purchases recorded from confirmed transactions",
		}),
		materialPayments: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "material_payments_total",
			Help:      "Raw material payments recorded",
		}),
		trackingEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tracking_events_total",
			Help:      "Tracking events appended, by timeline kind and status",
		}, []string{"target", "status"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Push notifications handled by the notifier",
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpRequestDuration,
		m.purchases,
		m.materialPayments,
		m.trackingEvents,
		m.notifications,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RegisterDBStats exports the connection pool gauges of db.
func (m *Metrics) RegisterDBStats(db *sql.DB) error {
	return errors.Wrap(m.registry.Register(collectors.NewDBStatsCollector(db, "postgres")), "register db stats collector")
}

// Middleware records request counts and latency by route template.
func (m *Metrics) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			status = statusFromError(err)
		}

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request().Method
		m.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		m.httpRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

		return err
	}
}

func (m *Metrics) PurchaseCreated() {
	m.purchases.Inc()
}

func (m *Metrics) MaterialPaymentRecorded() {
	m.materialPayments.Inc()
}

func (m *Metrics) TrackingEventAppended(target, status string) {
	m.trackingEvents.WithLabelValues(target, status).Inc()
}

func (m *Metrics) NotificationDelivered(outcome string) {
	m.notifications.WithLabelValues(outcome).Inc()
}

type httpCoder interface {
	HTTPCode() int
}

// statusFromError predicts the status the error handler will write.
func statusFromError(err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}

	var coder httpCoder
	if errors.As(err, &coder) {
		return coder.HTTPCode()
	}

	return http.StatusInternalServerError
}

func sanitize(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}

	return string(out)
}
