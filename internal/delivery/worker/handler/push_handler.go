// Package handler receives tracking events pushed by Pub/Sub.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"chaintrace/config"
	deliverycontext "chaintrace/internal/delivery/context"
	"chaintrace/internal/domain/constants"
	"chaintrace/internal/domain/service"
	"chaintrace/internal/errors"
	"chaintrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage is the push envelope; the local publisher posts the same shape.
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// tokenVerifier checks the OIDC token Pub/Sub attaches to push requests.
type tokenVerifier func(req *http.Request) error

// PushHandler turns Pub/Sub deliveries of tracking events into notifications.
type PushHandler struct {
	verifyPushAuth bool
	verifyToken    tokenVerifier
	logger         *slog.Logger
	notificationUC usecase.NotificationUsecase
}

type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	NotificationUC usecase.NotificationUsecase
}

// NewPushHandler only verifies push tokens for the google provider outside develop;
// the local publisher sends none.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger:         params.Logger,
		notificationUC: params.NotificationUC,
	}

	if cfg := params.Config.PubSub; cfg != nil && cfg.Provider == constants.PubSubProviderGoogle {
		h.verifyPushAuth = params.Config.Env.Env != constants.EnvDevelop
		h.verifyToken = pushTokenVerifier(cfg.PushAudience, cfg.PushServiceAccount)
	}

	return h
}

// HandlePush answers 503 only when the notification backend is unavailable so
// Pub/Sub redelivers; undeliverable events are acknowledged with 200.
func (h *PushHandler) HandlePush(c echo.Context) error {
	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("Rejected push without a valid token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	push, event, err := decodePush(c)
	if err != nil {
		h.logger.Error("Malformed tracking push", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := requestIDFor(c.Request().Context(), push, event)
	logger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("message_id", push.Message.MessageID),
		slog.String("target", event.TargetID()),
		slog.String("status", event.Status),
	)
	ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	err = h.notificationUC.DeliverTrackingEvent(ctx, event)
	switch {
	case err == nil:
		logger.Info("Tracking event delivered")
	case errors.Is(err, service.ErrNotificationUnavailable):
		logger.Warn("Notification backend unavailable, asking for redelivery", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	default:
		logger.Error("Tracking event dropped", slog.Any("error", err))
	}

	return c.NoContent(http.StatusOK)
}

func decodePush(c echo.Context) (*PubSubMessage, *service.TrackingEventMessage, error) {
	var push PubSubMessage
	if err := c.Bind(&push); err != nil {
		return nil, nil, errors.Wrap(err, "bind push envelope")
	}

	data, err := base64.StdEncoding.DecodeString(push.Message.Data)
	if err != nil {
		return nil, nil, errors.Wrap(err, "decode message data")
	}

	var event service.TrackingEventMessage
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, nil, errors.Wrap(err, "unmarshal tracking event")
	}
	if event.Status == "" || strings.Trim(event.TargetID(), "/") == "" {
		return nil, nil, errors.New("tracking event without target or status")
	}

	return &push, &event, nil
}

// requestIDFor prefers the message attribute, then the event body, then the
// X-Request-Id of the push request itself.
func requestIDFor(ctx context.Context, push *PubSubMessage, event *service.TrackingEventMessage) string {
	if id := push.Message.Attributes[constants.AttrRequestID]; id != "" {
		return id
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if id := deliverycontext.GetRequestIDFromContext(ctx); id != "" {
		return id
	}

	return uuid.NewString()
}

// pushTokenVerifier validates the Google-signed OIDC token of authenticated push
// subscriptions. See https://cloud.google.com/pubsub/docs/authenticate-push-subscriptions.
func pushTokenVerifier(audience, serviceAccount string) tokenVerifier {
	return func(req *http.Request) error {
		token, found := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
		if !found || token == "" {
			return errors.New("missing bearer token")
		}

		aud := audience
		if aud == "" {
			scheme := "https"
			if req.TLS == nil {
				scheme = "http"
			}
			aud = scheme + "://" + req.Host + req.URL.Path
		}

		payload, err := idtoken.Validate(req.Context(), token, aud)
		if err != nil {
			return errors.Wrap(err, "failed to validate token")
		}
		if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
			return errors.Errorf("invalid issuer: %s", payload.Issuer)
		}
		if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
			return errors.New("email not verified")
		}
		if serviceAccount != "" && payload.Claims["email"] != serviceAccount {
			return errors.Errorf("unexpected push identity %v", payload.Claims["email"])
		}

		return nil
	}
}
