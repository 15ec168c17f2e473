package handler

import (
	"log/slog"

	"chaintrace/internal/delivery/http/response"
	"chaintrace/internal/domain/entity"
	domainerrors "chaintrace/internal/domain/errors"
	"chaintrace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PurchaseHandlerParams holds dependencies for PurchaseHandler, injected by Fx.
type PurchaseHandlerParams struct {
	fx.In

	PurchaseUC usecase.PurchaseUsecase
	Logger     *slog.Logger
}

// PurchaseHandler serves finished-goods orders.
type PurchaseHandler struct {
	uc     usecase.PurchaseUsecase
	logger *slog.Logger
}

// NewPurchaseHandler is the constructor for PurchaseHandler
func NewPurchaseHandler(params PurchaseHandlerParams) *PurchaseHandler {
	return &PurchaseHandler{
		uc:     params.PurchaseUC,
		logger: params.Logger,
	}
}

// CreatePurchaseRequest is sent once the payment transaction is broadcast.
type CreatePurchaseRequest struct {
	ProductID          string                 `json:"productId"`
	ProductName        string                 `json:"productName" validate:"required"`
	ProductDescription string                 `json:"productDescription"`
	Quantity           int                    `json:"quantity" validate:"gt=0"`
	UnitPrice          float64                `json:"unitPrice" validate:"gte=0"`
	TotalAmount        float64                `json:"totalAmount"`
	CustomerID         string                 `json:"customerId" validate:"required"`
	ProducerID         string                 `json:"producerId" validate:"required"`
	TransactionHash    string                 `json:"transactionHash" validate:"required"`
	DeliveryAddress    DeliveryAddressRequest `json:"deliveryAddress"`
}

// DeliveryAddressRequest is where a purchase or material payment ships to.
type DeliveryAddressRequest struct {
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state"`
	Country    string `json:"country" validate:"required"`
	PostalCode string `json:"postalCode"`
}

func (r DeliveryAddressRequest) toEntity() entity.PostalAddress {
	return entity.PostalAddress{
		Street:     r.Street,
		City:       r.City,
		State:      r.State,
		Country:    r.Country,
		PostalCode: r.PostalCode,
	}
}

// CreatePurchase handles POST /api/purchase/create.
func (h *PurchaseHandler) CreatePurchase(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return err
	}

	var req CreatePurchaseRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	purchase, err := h.uc.CreatePurchase(c.Request().Context(), session, &usecase.CreatePurchaseInput{
		ProductID:          req.ProductID,
		ProductName:        req.ProductName,
		ProductDescription: req.ProductDescription,
		Quantity:           req.Quantity,
		UnitPrice:          req.UnitPrice,
		TotalAmount:        req.TotalAmount,
		CustomerWallet:     req.CustomerID,
		ProducerWallet:     req.ProducerID,
		TransactionHash:    req.TransactionHash,
		DeliveryAddress:    req.DeliveryAddress.toEntity(),
	})
	if err != nil {
		return err
	}

	return response.Created(c, newPurchaseView(purchase), "Purchase created successfully")
}

// ListUserPurchases handles GET /api/purchases/user?userId&role.
func (h *PurchaseHandler) ListUserPurchases(c echo.Context) error {
	userRef := c.QueryParam("userId")
	if userRef == "" {
		return domainerrors.ErrValidationFailed.WithDetails("userId is required")
	}

	var role entity.Role
	if raw := c.QueryParam("role"); raw != "" {
		parsed, ok := entity.ParseRole(raw)
		if !ok {
			return domainerrors.ErrValidationFailed.WithDetails("unknown role " + raw)
		}
		role = parsed
	}

	purchases, err := h.uc.ListUserPurchases(c.Request().Context(), userRef, role)
	if err != nil {
		return err
	}

	return response.OK(c, newPurchaseViews(purchases), "")
}
