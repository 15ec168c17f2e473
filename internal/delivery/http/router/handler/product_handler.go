package handler

import (
	"log/slog"

	"chaintrace/internal/delivery/http/response"
	"chaintrace/internal/domain/entity"
	"chaintrace/internal/domain/repository"
	"chaintrace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves finished-goods listings.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		uc:     params.ProductUC,
		logger: params.Logger,
	}
}

// AddProductRequest is a simple listing.
type AddProductRequest struct {
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gt=0"`
	Location string  `json:"location" validate:"required"`
}

// AddEnhancedProductRequest adds catalogue detail to a simple listing.
type AddEnhancedProductRequest struct {
	AddProductRequest
	Description       string            `json:"description"`
	Category          string            `json:"category"`
	Images            []string          `json:"images"`
	Specifications    map[string]string `json:"specifications"`
	SKU               string            `json:"sku"`
	AvailableQuantity *int              `json:"availableQuantity" validate:"omitempty,gte=0"`
	Unit              string            `json:"unit"`
}

// AddProduct handles POST /api/addProduct.
func (h *ProductHandler) AddProduct(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return err
	}

	var req AddProductRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), session, &usecase.CreateProductInput{
		Kind:     entity.ProductKindSimple,
		Name:     req.Name,
		Price:    req.Price,
		Location: req.Location,
	})
	if err != nil {
		return err
	}

	return response.Created(c, newProductView(product), "Product added successfully")
}

// AddEnhancedProduct handles POST /api/products/enhanced.
func (h *ProductHandler) AddEnhancedProduct(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return err
	}

	var req AddEnhancedProductRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), session, &usecase.CreateProductInput{
		Kind:              entity.ProductKindEnhanced,
		Name:              req.Name,
		Price:             req.Price,
		Location:          req.Location,
		Description:       req.Description,
		Category:          req.Category,
		Images:            req.Images,
		Specifications:    req.Specifications,
		SKU:               req.SKU,
		AvailableQuantity: req.AvailableQuantity,
		Unit:              req.Unit,
	})
	if err != nil {
		return err
	}

	return response.Created(c, newProductView(product), "Product added successfully")
}

// ListProducts handles GET /api/products?addedBy&category&kind.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	return h.list(c, entity.ProductKind(c.QueryParam("kind")))
}

// ListEnhancedProducts handles GET /api/products/enhanced.
func (h *ProductHandler) ListEnhancedProducts(c echo.Context) error {
	return h.list(c, entity.ProductKindEnhanced)
}

func (h *ProductHandler) list(c echo.Context, kind entity.ProductKind) error {
	products, err := h.uc.ListProducts(c.Request().Context(), repository.ProductFilter{
		AddedBy:  c.QueryParam("addedBy"),
		Category: c.QueryParam("category"),
		Kind:     kind,
	})
	if err != nil {
		return err
	}

	return response.OK(c, newProductViews(products), "")
}

// GetProduct handles GET /api/products/:id.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := parseUUID(c.Param("id"), "id")
	if err != nil {
		return err
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, newProductView(product), "")
}
