package handler

import (
	"log/slog"
	"net/http"
	"time"

	"chaintrace/internal/delivery/http/response"
	"chaintrace/internal/domain/entity"
	"chaintrace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TrackingHandlerParams holds dependencies for TrackingHandler, injected by Fx.
type TrackingHandlerParams struct {
	fx.In

	TrackingUC usecase.TrackingUsecase
	Logger     *slog.Logger
}

// TrackingHandler serves purchase timelines.
type TrackingHandler struct {
	uc     usecase.TrackingUsecase
	logger *slog.Logger
}

// NewTrackingHandler is the constructor for TrackingHandler
func NewTrackingHandler(params TrackingHandlerParams) *TrackingHandler {
	return &TrackingHandler{
		uc:     params.TrackingUC,
		logger: params.Logger,
	}
}

// TrackingEventRequest is one status report. It is shared by both tracking paths.
type TrackingEventRequest struct {
	Status              string            `json:"status" validate:"required,trackingstatus"`
	Timestamp           *time.Time        `json:"timestamp"`
	Location            entity.Location   `json:"location"`
	Description         string            `json:"description"`
	Images              []string          `json:"images"`
	EstimatedNextUpdate *time.Time        `json:"estimatedNextUpdate"`
	Notes               string            `json:"notes"`
	Temperature         *float64          `json:"temperature"`
	Humidity            *float64          `json:"humidity"`
	HandledBy           *entity.HandledBy `json:"handledBy"`
}

func (r *TrackingEventRequest) input() *usecase.AppendTrackingInput {
	return &usecase.AppendTrackingInput{
		Status:              entity.TrackingStatus(r.Status),
		Timestamp:           r.Timestamp,
		Location:            r.Location,
		Description:         r.Description,
		Images:              r.Images,
		EstimatedNextUpdate: r.EstimatedNextUpdate,
		Notes:               r.Notes,
		Temperature:         r.Temperature,
		Humidity:            r.Humidity,
		HandledBy:           r.HandledBy,
	}
}

// PurchaseTrackingRequest is the body of POST /api/tracking/update.
type PurchaseTrackingRequest struct {
	PurchaseID string `json:"purchaseId" validate:"required"`
	TrackingEventRequest
}

// GetTracking handles GET /api/tracking/:purchaseId.
func (h *TrackingHandler) GetTracking(c echo.Context) error {
	view, err := h.uc.GetPurchaseTracking(c.Request().Context(), c.Param("purchaseId"))
	if err != nil {
		return err
	}

	return response.OK(c, newTrackingView(view), "")
}

// UpdateTracking handles PUT /api/tracking/:purchaseId.
func (h *TrackingHandler) UpdateTracking(c echo.Context) error {
	var req TrackingEventRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	return h.append(c, c.Param("purchaseId"), &req)
}

// PostUpdate handles POST /api/tracking/update.
func (h *TrackingHandler) PostUpdate(c echo.Context) error {
	var req PurchaseTrackingRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	return h.append(c, req.PurchaseID, &req.TrackingEventRequest)
}

func (h *TrackingHandler) append(c echo.Context, purchaseID string, req *TrackingEventRequest) error {
	session, err := requireSession(c)
	if err != nil {
		return err
	}

	view, err := h.uc.AppendPurchaseEvent(c.Request().Context(), session, purchaseID, req.input())
	if err != nil {
		return err
	}

	return response.OK(c, newTrackingView(view), "Tracking updated successfully")
}

// GetQRCode handles GET /api/tracking/:purchaseId/qr and answers with a PNG.
func (h *TrackingHandler) GetQRCode(c echo.Context) error {
	png, err := h.uc.GetTrackingQR(c.Request().Context(), c.Param("purchaseId"))
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
