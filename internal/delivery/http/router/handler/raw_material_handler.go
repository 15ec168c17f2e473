package handler

import (
	"log/slog"

	"chaintrace/internal/delivery/http/response"
	domainerrors "chaintrace/internal/domain/errors"
	"chaintrace/internal/domain/repository"
	"chaintrace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Actions accepted by POST /api/rawMaterial.
const (
	rawMaterialActionCreate        = "create"
	rawMaterialActionRecordPayment = "recordPayment"
)

// RawMaterialHandlerParams holds dependencies for RawMaterialHandler, injected by Fx.
type RawMaterialHandlerParams struct {
	fx.In

	RawMaterialUC usecase.RawMaterialUsecase
	TrackingUC    usecase.TrackingUsecase
	Logger        *slog.Logger
}

// RawMaterialHandler serves supplier listings, their payments and payment timelines.
type RawMaterialHandler struct {
	uc         usecase.RawMaterialUsecase
	trackingUC usecase.TrackingUsecase
	logger     *slog.Logger
}

// NewRawMaterialHandler is the constructor for RawMaterialHandler
func NewRawMaterialHandler(params RawMaterialHandlerParams) *RawMaterialHandler {
	return &RawMaterialHandler{
		uc:         params.RawMaterialUC,
		trackingUC: params.TrackingUC,
		logger:     params.Logger,
	}
}

// CreateRawMaterialRequest lists a new material.
type CreateRawMaterialRequest struct {
	Name              string  `json:"name" validate:"required"`
	Description       string  `json:"description"`
	Category          string  `json:"category"`
	Price             float64 `json:"price" validate:"gt=0"`
	Location          string  `json:"location"`
	AvailableQuantity *int    `json:"availableQuantity" validate:"omitempty,gte=0"`
	Unit              string  `json:"unit"`
}

// RecordPaymentRequest is a producer's completed payment for a material.
type RecordPaymentRequest struct {
	MaterialID      string                 `json:"materialId" validate:"required,uuid"`
	Quantity        int                    `json:"quantity" validate:"gt=0"`
	Amount          float64                `json:"amount" validate:"gte=0"`
	TransactionHash string                 `json:"transactionHash" validate:"required"`
	BuyerName       string                 `json:"buyerName"`
	DeliveryAddress DeliveryAddressRequest `json:"deliveryAddress"`
}

// rawMaterialActionRequest is the tagged union of POST /api/rawMaterial. The two
// variants share no JSON keys, so both decode from one body.
type rawMaterialActionRequest struct {
	Action string `json:"action"`
	CreateRawMaterialRequest
	RecordPaymentRequest
}

// MaterialTrackingRequest appends an event to one payment's timeline.
type MaterialTrackingRequest struct {
	MaterialID string `json:"materialId" validate:"required,uuid"`
	PaymentID  string `json:"paymentId" validate:"required"`
	TrackingEventRequest
}

// Post handles POST /api/rawMaterial.
func (h *RawMaterialHandler) Post(c echo.Context) error {
	var req rawMaterialActionRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	switch req.Action {
	case rawMaterialActionCreate:
		if err := c.Validate(&req.CreateRawMaterialRequest); err != nil {
			return err
		}

		return h.create(c, &req.CreateRawMaterialRequest)
	case rawMaterialActionRecordPayment:
		if err := c.Validate(&req.RecordPaymentRequest); err != nil {
			return err
		}

		return h.recordPayment(c, &req.RecordPaymentRequest)
	default:
		return domainerrors.ErrInvalidAction.WithDetails("action must be create or recordPayment")
	}
}

func (h *RawMaterialHandler) create(c echo.Context, req *CreateRawMaterialRequest) error {
	session, err := requireSession(c)
	if err != nil {
		return err
	}

	material, err := h.uc.CreateRawMaterial(c.Request().Context(), session, &usecase.CreateRawMaterialInput{
		Name:              req.Name,
		Description:       req.Description,
		Category:          req.Category,
		Price:             req.Price,
		Location:          req.Location,
		AvailableQuantity: req.AvailableQuantity,
		Unit:              req.Unit,
	})
	if err != nil {
		return err
	}

	return response.Created(c, newRawMaterialView(material), "Raw material added successfully")
}

// RecordPayment handles POST /api/rawmaterial/purchase.
func (h *RawMaterialHandler) RecordPayment(c echo.Context) error {
	var req RecordPaymentRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	return h.recordPayment(c, &req)
}

func (h *RawMaterialHandler) recordPayment(c echo.Context, req *RecordPaymentRequest) error {
	session, err := requireSession(c)
	if err != nil {
		return err
	}
	materialID, err := parseUUID(req.MaterialID, "materialId")
	if err != nil {
		return err
	}

	payment, err := h.uc.RecordPayment(c.Request().Context(), session, &usecase.RecordMaterialPaymentInput{
		MaterialID:      materialID,
		Quantity:        req.Quantity,
		Amount:          req.Amount,
		TransactionHash: req.TransactionHash,
		BuyerName:       req.BuyerName,
		DeliveryAddress: req.DeliveryAddress.toEntity(),
	})
	if err != nil {
		return err
	}

	return response.Created(c, newPaymentView(payment), "Payment recorded successfully")
}

// List handles GET /api/rawMaterial?addedBy&category.
func (h *RawMaterialHandler) List(c echo.Context) error {
	materials, err := h.uc.ListRawMaterials(c.Request().Context(), repository.RawMaterialFilter{
		AddedBy:  c.QueryParam("addedBy"),
		Category: c.QueryParam("category"),
	})
	if err != nil {
		return err
	}

	return response.OK(c, newRawMaterialViews(materials), "")
}

// Get handles GET /api/rawMaterial/:id.
func (h *RawMaterialHandler) Get(c echo.Context) error {
	id, err := parseUUID(c.Param("id"), "id")
	if err != nil {
		return err
	}

	material, err := h.uc.GetRawMaterial(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, newRawMaterialView(material), "")
}

// AppendTracking handles POST /api/rawmaterial/tracking.
func (h *RawMaterialHandler) AppendTracking(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return err
	}

	var req MaterialTrackingRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	materialID, err := parseUUID(req.MaterialID, "materialId")
	if err != nil {
		return err
	}

	result, err := h.trackingUC.AppendMaterialEvent(c.Request().Context(), session, materialID, req.PaymentID, req.input())
	if err != nil {
		return err
	}

	return response.OK(c, materialTrackingView{
		MaterialID: result.MaterialID,
		Payment:    newPaymentView(&result.Payment),
		Event:      result.Event,
	}, "Tracking updated successfully")
}
