package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"chaintrace/config"
	deliverycontext "chaintrace/internal/delivery/context"
	"chaintrace/internal/domain/constants"
	domainerrors "chaintrace/internal/domain/errors"
	"chaintrace/internal/domain/service"
	"chaintrace/internal/errors"
	mockUC "chaintrace/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUC.MockNotificationUsecase) {
	uc := mockUC.NewMockNotificationUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:         cfg,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationUC: uc,
	})

	return h, uc
}

func pushBody(t *testing.T, data string, attrs map[string]string) []byte {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = data
	msg.Message.Attributes = attrs
	msg.Message.MessageID = "m-1"
	msg.Subscription = "projects/p/subscriptions/tracking-push"

	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	return raw
}

func encodedEvent(t *testing.T, event *service.TrackingEventMessage) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func servePush(h *PushHandler, body []byte) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush_Outcomes(t *testing.T) {
	event := &service.TrackingEventMessage{
		RequestID:  "req-from-event",
		Target:     service.TrackingTargetPurchase,
		PurchaseID: "PUR-1",
		Status:     "shipped",
		Sequence:   2,
	}

	tests := []struct {
		name       string
		ucErr      error
		wantStatus int
	}{
		{name: "delivered", wantStatus: http.StatusOK},
		{name: "backend unavailable is retried", ucErr: errors.Wrap(service.ErrNotificationUnavailable, "fcm 503"), wantStatus: http.StatusServiceUnavailable},
		{name: "invalid event is acknowledged", ucErr: domainerrors.ErrValidationFailed.WithDetails("no target"), wantStatus: http.StatusOK},
		{name: "permanent send failure is acknowledged", ucErr: errors.New("invalid topic"), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := newTestPushHandler(t, &config.Config{})
			uc.EXPECT().
				DeliverTrackingEvent(mock.Anything, mock.MatchedBy(func(ev *service.TrackingEventMessage) bool {
					return ev.PurchaseID == "PUR-1" && ev.Status == "shipped" && ev.Sequence == 2
				})).
				Return(tt.ucErr)

			rec := servePush(h, pushBody(t, encodedEvent(t, event), nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_HandlePush_Malformed(t *testing.T) {
	h, _ := newTestPushHandler(t, &config.Config{})

	tests := map[string][]byte{
		"not json":         []byte("{"),
		"not base64":       pushBody(t, "%%%", nil),
		"payload not json": pushBody(t, base64.StdEncoding.EncodeToString([]byte("shipped")), nil),
		"event without target": pushBody(t, encodedEvent(t, &service.TrackingEventMessage{
			Target: service.TrackingTargetMaterialPayment,
			Status: "shipped",
		}), nil),
		"event without status": pushBody(t, encodedEvent(t, &service.TrackingEventMessage{
			Target:     service.TrackingTargetPurchase,
			PurchaseID: "PUR-1",
		}), nil),
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, servePush(h, body).Code)
		})
	}
}

func TestPushHandler_RequestIDPrecedence(t *testing.T) {
	h, uc := newTestPushHandler(t, &config.Config{})
	event := &service.TrackingEventMessage{RequestID: "req-from-event", Target: service.TrackingTargetPurchase, PurchaseID: "PUR-1", Status: "shipped"}

	var seen []string
	uc.EXPECT().DeliverTrackingEvent(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, _ *service.TrackingEventMessage) {
			seen = append(seen, deliverycontext.GetRequestIDFromContext(ctx))
		}).
		Return(nil)

	servePush(h, pushBody(t, encodedEvent(t, event), map[string]string{constants.AttrRequestID: "req-from-attr"}))
	servePush(h, pushBody(t, encodedEvent(t, event), nil))

	assert.Equal(t, []string{"req-from-attr", "req-from-event"}, seen)
}

func TestPushHandler_VerifiesGooglePushOutsideDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = "production"
	h, _ := newTestPushHandler(t, cfg)
	require.True(t, h.verifyPushAuth)

	h.verifyToken = func(*http.Request) error { return errors.New("bad token") }
	rec := servePush(h, pushBody(t, "", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	cfg.Env.Env = constants.EnvDevelop
	h, _ = newTestPushHandler(t, cfg)
	assert.False(t, h.verifyPushAuth)

	h, _ = newTestPushHandler(t, &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}})
	assert.False(t, h.verifyPushAuth)
}

func TestPushTokenVerifier_RequiresBearer(t *testing.T) {
	verify := pushTokenVerifier("https://notifier.example/push", "")

	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	require.Error(t, verify(req))

	req.Header.Set(echo.HeaderAuthorization, "Basic abc")
	require.Error(t, verify(req))
}
