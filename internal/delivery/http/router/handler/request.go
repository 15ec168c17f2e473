package handler

import (
	"strconv"
	"strings"

	"chaintrace/internal/delivery/http/middleware"
	"chaintrace/internal/delivery/http/response"
	"chaintrace/internal/domain/entity"
	domainerrors "chaintrace/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bind decodes the request into req and runs the registered validator on it.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}

// requireSession returns the caller resolved by the auth middleware.
func requireSession(c echo.Context) (entity.Session, error) {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		return entity.Session{}, domainerrors.ErrUnauthorized
	}

	return session, nil
}

func parseUUID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(field + " must be a uuid")
	}

	return id, nil
}

func queryInt(c echo.Context, name string) (int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be an integer")
	}

	return n, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"}, "Service is healthy")
}
