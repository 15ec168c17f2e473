// Package worker serves the notifier: Pub/Sub push deliveries of tracking events.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"chaintrace/config"
	"chaintrace/internal/delivery"
	httpmiddleware "chaintrace/internal/delivery/http/middleware"
	"chaintrace/internal/delivery/middleware"
	"chaintrace/internal/delivery/worker/handler"
	"chaintrace/internal/domain/lifecycle"
	"chaintrace/internal/errors"
	"chaintrace/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// PushPath is where the push subscription (or the local publisher) delivers.
const PushPath = "/push"

type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	Metrics     *metrics.Metrics `optional:"true"`
	PushHandler *handler.PushHandler
}

type workerServer struct {
	hostPort string
	logger   *slog.Logger
	echo     *echo.Echo
}

// NewServer builds the notifier server; cmd/notifier serves it.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &workerServer{
		hostPort: net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Cfg.HTTP.Port)),
		logger:   params.Logger,
		echo:     newWorkerEcho(params),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newWorkerEcho(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(params.Logger).Process,
		middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle,
	)
	if params.Metrics != nil {
		e.Use(params.Metrics.Middleware)
	}
	// Pub/Sub messages are capped at 10MB; tracking events are far smaller.
	e.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	if params.Metrics != nil && params.Cfg.Metrics.Enabled {
		e.GET(params.Cfg.Metrics.Path, echo.WrapHandler(params.Metrics.Handler()))
	}
	e.POST(PushPath, params.PushHandler.HandlePush)

	return e
}

func (s *workerServer) Serve(_ context.Context) error {
	s.logger.Info("Starting notifier HTTP server", slog.String("host_port", s.hostPort))
	if err := s.echo.Start(s.hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down notifier HTTP server")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
