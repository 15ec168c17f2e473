package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"chaintrace/internal/domain/entity"
	domainerrors "chaintrace/internal/domain/errors"
	"chaintrace/internal/domain/repository"
	mockUC "chaintrace/internal/mocks/usecase"
	"chaintrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProductRoutes(t *testing.T, session entity.Session) (*testServer, *mockUC.MockProductUsecase) {
	srv := newTestServer(t, session)
	uc := mockUC.NewMockProductUsecase(t)
	h := NewProductHandler(ProductHandlerParams{ProductUC: uc, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})

	producerOnly := srv.auth.RequireRole(entity.RoleProducer)
	srv.echo.POST("/api/addProduct", h.AddProduct, srv.auth.Authenticate, producerOnly)
	srv.echo.GET("/api/products", h.ListProducts)
	srv.echo.GET("/api/products/enhanced", h.ListEnhancedProducts)
	srv.echo.POST("/api/products/enhanced", h.AddEnhancedProduct, srv.auth.Authenticate, producerOnly)
	srv.echo.GET("/api/products/:id", h.GetProduct)

	return srv, uc
}

func TestProductHandler_AddProduct(t *testing.T) {
	srv, uc := newProductRoutes(t, testProducer)

	uc.EXPECT().CreateProduct(mock.Anything, testProducer, &usecase.CreateProductInput{
		Kind: entity.ProductKindSimple, Name: "Dark chocolate", Price: 0.02, Location: "Porto",
	}).Return(&entity.Product{
		ID: uuid.New(), Kind: entity.ProductKindSimple, Name: "Dark chocolate", Price: 0.02,
		Location: "Porto", AddedBy: testProducer.WalletAddress, IsActive: true,
	}, nil)

	rec := srv.do(t, http.MethodPost, "/api/addProduct", map[string]any{
		"name": "Dark chocolate", "price": 0.02, "location": "Porto",
	}, true)

	require.Equal(t, http.StatusCreated, rec.Code)
	data := decode(t, rec).Data.(map[string]any)
	assert.Equal(t, testProducer.WalletAddress, data["addedBy"])
	assert.Empty(t, data["payments"])
}

func TestProductHandler_ProducerOnly(t *testing.T) {
	for _, target := range []string{"/api/addProduct", "/api/products/enhanced"} {
		t.Run(target, func(t *testing.T) {
			srv, _ := newProductRoutes(t, testSupplier)

			rec := srv.do(t, http.MethodPost, target, map[string]any{
				"name": "Dark chocolate", "price": 0.02, "location": "Porto",
			}, true)

			require.Equal(t, http.StatusForbidden, rec.Code)
			assert.Equal(t, "ROLE_NOT_ALLOWED", errorCode(decode(t, rec)))
		})
	}
}

func TestProductHandler_AddEnhancedProduct_Validation(t *testing.T) {
	srv, _ := newProductRoutes(t, testProducer)

	rec := srv.do(t, http.MethodPost, "/api/products/enhanced", map[string]any{
		"name": "Dark chocolate", "price": 0, "availableQuantity": -1,
	}, true)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(resp))
	assert.Contains(t, resp.Error.Details, "price must be greater than 0")
	assert.Contains(t, resp.Error.Details, "location is required")
	assert.Contains(t, resp.Error.Details, "availableQuantity must be at least 0")
}

func TestProductHandler_ListFilters(t *testing.T) {
	srv, uc := newProductRoutes(t, testProducer)

	uc.EXPECT().ListProducts(mock.Anything, repository.ProductFilter{AddedBy: "0xBEEF", Category: "sweets"}).
		Return([]*entity.Product{{ID: uuid.New(), Name: "Fudge"}}, nil)
	uc.EXPECT().ListProducts(mock.Anything, repository.ProductFilter{Kind: entity.ProductKindEnhanced}).
		Return([]*entity.Product{}, nil)

	rec := srv.do(t, http.MethodGet, "/api/products?addedBy=0xBEEF&category=sweets", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec).Data, 1)

	rec = srv.do(t, http.MethodGet, "/api/products/enhanced", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode(t, rec).Data)
}

func TestProductHandler_GetProduct(t *testing.T) {
	srv, uc := newProductRoutes(t, testProducer)
	missing := uuid.New()
	uc.EXPECT().GetProduct(mock.Anything, missing).Return(nil, domainerrors.ErrProductNotFound)

	rec := srv.do(t, http.MethodGet, "/api/products/"+missing.String(), nil, false)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PRODUCT_NOT_FOUND", errorCode(decode(t, rec)))

	rec = srv.do(t, http.MethodGet, "/api/products/42", nil, false)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "id must be a uuid", decode(t, rec).Error.Details)
}
