// Package context carries request-scoped values (request id, logger, session)
// between the echo layer, the use cases and the Pub/Sub worker.
package context

import (
	"context"
	"log/slog"

	"chaintrace/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
	sessionKey
)

// HeaderXRequestID travels with API requests and with published tracking events.
const HeaderXRequestID = "X-Request-Id"

// echoRequestIDKey is the echo.Context key the request id is cached under.
const echoRequestIDKey = "request_id"

// SetRequestID caches the request id on the echo context for the access log.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestID returns the id cached by SetRequestID, or "" before the
// request-id middleware ran.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(echoRequestIDKey).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestIDFromContext returns "" when ctx carries no request id.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithSession stores the authenticated caller and tags the request logger with
// their wallet and role.
func WithSession(ctx context.Context, session entity.Session) context.Context {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		ctx = WithLogger(ctx, logger.With(
			slog.String("wallet", session.WalletAddress),
			slog.String("role", string(session.Role)),
		))
	}

	return context.WithValue(ctx, sessionKey, session)
}

// SessionFromContext reports false for anonymous requests.
func SessionFromContext(ctx context.Context) (entity.Session, bool) {
	session, ok := ctx.Value(sessionKey).(entity.Session)

	return session, ok && !session.IsZero()
}
