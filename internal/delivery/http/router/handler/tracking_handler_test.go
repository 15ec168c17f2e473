package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"chaintrace/internal/domain/entity"
	domainerrors "chaintrace/internal/domain/errors"
	"chaintrace/internal/errors"
	mockUC "chaintrace/internal/mocks/usecase"
	"chaintrace/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTrackingRoutes(t *testing.T) (*testServer, *mockUC.MockTrackingUsecase) {
	srv := newTestServer(t, testProducer)
	uc := mockUC.NewMockTrackingUsecase(t)
	h := NewTrackingHandler(TrackingHandlerParams{TrackingUC: uc, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})

	srv.echo.POST("/api/tracking/update", h.PostUpdate, srv.auth.Authenticate)
	srv.echo.GET("/api/tracking/:purchaseId", h.GetTracking)
	srv.echo.PUT("/api/tracking/:purchaseId", h.UpdateTracking, srv.auth.Authenticate)
	srv.echo.GET("/api/tracking/:purchaseId/qr", h.GetQRCode)

	return srv, uc
}

func shippedView() *usecase.TrackingView {
	placed := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	minutes := int64(90)
	km := 274.3

	return &usecase.TrackingView{
		Purchase: &entity.Purchase{
			PurchaseID: "PUR-1",
			Tracking:   entity.TrackingLog{CurrentStatus: entity.StatusShipped},
		},
		Timeline: []usecase.TimelineEntry{
			{TrackingEvent: entity.TrackingEvent{Status: entity.StatusOrderPlaced, Timestamp: placed}},
			{
				TrackingEvent:          entity.TrackingEvent{Status: entity.StatusShipped, Timestamp: placed.Add(90 * time.Minute), ActualDuration: &minutes},
				DurationHuman:          "1h 30m",
				DistanceFromPreviousKm: &km,
			},
		},
		Progress: 66,
	}
}

func TestTrackingHandler_AppendPaths(t *testing.T) {
	isShipped := mock.MatchedBy(func(in *usecase.AppendTrackingInput) bool {
		return in.Status == entity.StatusShipped && in.Location.Address == "Porto hub"
	})

	t.Run("POST update takes purchaseId from the body", func(t *testing.T) {
		srv, uc := newTrackingRoutes(t)
		uc.EXPECT().AppendPurchaseEvent(mock.Anything, testProducer, "PUR-1", isShipped).Return(shippedView(), nil)

		rec := srv.do(t, http.MethodPost, "/api/tracking/update", map[string]any{
			"purchaseId": "PUR-1",
			"status":     "shipped",
			"location":   map[string]string{"address": "Porto hub"},
		}, true)

		require.Equal(t, http.StatusOK, rec.Code)
		data := decode(t, rec).Data.(map[string]any)
		timeline := data["timeline"].([]any)
		require.Len(t, timeline, 2)
		last := timeline[1].(map[string]any)
		assert.Equal(t, "1h 30m", last["durationHuman"])
		assert.InDelta(t, 274.3, last["distanceFromPreviousKm"], 1e-9)
		assert.InDelta(t, 90, last["actualDuration"], 0)
		assert.Nil(t, timeline[0].(map[string]any)["actualDuration"])
		assert.InDelta(t, 66, data["progress"], 0)
	})

	t.Run("PUT takes purchaseId from the path", func(t *testing.T) {
		srv, uc := newTrackingRoutes(t)
		uc.EXPECT().AppendPurchaseEvent(mock.Anything, testProducer, "PUR-1", isShipped).Return(shippedView(), nil)

		rec := srv.do(t, http.MethodPut, "/api/tracking/PUR-1", map[string]any{
			"status":   "shipped",
			"location": map[string]string{"address": "Porto hub"},
		}, true)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestTrackingHandler_AppendRejections(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]any
		ucErr      error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "unknown status never reaches the use case",
			body:       map[string]any{"purchaseId": "PUR-1", "status": "teleported"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "illegal transition",
			body:       map[string]any{"purchaseId": "PUR-1", "status": "order_placed"},
			ucErr:      errors.Wrap(domainerrors.ErrInvalidStatusTransition.WithDetails("delivered -> order_placed"), "append"),
			wantStatus: http.StatusConflict,
			wantCode:   "INVALID_STATUS_TRANSITION",
		},
		{
			name:       "not a party",
			body:       map[string]any{"purchaseId": "PUR-1", "status": "shipped"},
			ucErr:      domainerrors.ErrTrackingUpdateForbidden,
			wantStatus: http.StatusForbidden,
			wantCode:   "TRACKING_UPDATE_FORBIDDEN",
		},
		{
			name:       "lost race",
			body:       map[string]any{"purchaseId": "PUR-1", "status": "shipped"},
			ucErr:      domainerrors.ErrConcurrentUpdate,
			wantStatus: http.StatusConflict,
			wantCode:   "CONCURRENT_UPDATE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, uc := newTrackingRoutes(t)
			if tt.ucErr != nil {
				uc.EXPECT().AppendPurchaseEvent(mock.Anything, testProducer, "PUR-1", mock.Anything).Return(nil, tt.ucErr)
			}

			rec := srv.do(t, http.MethodPost, "/api/tracking/update", tt.body, true)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, errorCode(decode(t, rec)))
		})
	}
}

func TestTrackingHandler_GetTracking_NotFound(t *testing.T) {
	srv, uc := newTrackingRoutes(t)
	uc.EXPECT().GetPurchaseTracking(mock.Anything, "PUR-404").Return(nil, domainerrors.ErrPurchaseNotFound)

	rec := srv.do(t, http.MethodGet, "/api/tracking/PUR-404", nil, false)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PURCHASE_NOT_FOUND", errorCode(decode(t, rec)))
}

func TestTrackingHandler_GetQRCode(t *testing.T) {
	srv, uc := newTrackingRoutes(t)
	png := []byte("\x89PNG\r\n\x1a\n-fake")
	uc.EXPECT().GetTrackingQR(mock.Anything, "PUR-1").Return(png, nil)

	rec := srv.do(t, http.MethodGet, "/api/tracking/PUR-1/qr", nil, false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}
