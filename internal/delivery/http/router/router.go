// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"chaintrace/config"
	"chaintrace/internal/delivery/http/middleware"
	"chaintrace/internal/delivery/http/router/handler"
	"chaintrace/internal/domain/entity"
	"chaintrace/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler           *handler.UserHandler
	ProductHandler        *handler.ProductHandler
	RawMaterialHandler    *handler.RawMaterialHandler
	PurchaseHandler       *handler.PurchaseHandler
	TrackingHandler       *handler.TrackingHandler
	RecommendationHandler *handler.RecommendationHandler
	AuthMiddleware        *middleware.AuthMiddleware
	Metrics               *metrics.Metrics
	Config                *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler           *handler.UserHandler
	productHandler        *handler.ProductHandler
	rawMaterialHandler    *handler.RawMaterialHandler
	purchaseHandler       *handler.PurchaseHandler
	trackingHandler       *handler.TrackingHandler
	recommendationHandler *handler.RecommendationHandler
	authMiddleware        *middleware.AuthMiddleware
	metrics               *metrics.Metrics
	config                *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:           params.UserHandler,
		productHandler:        params.ProductHandler,
		rawMaterialHandler:    params.RawMaterialHandler,
		purchaseHandler:       params.PurchaseHandler,
		trackingHandler:       params.TrackingHandler,
		recommendationHandler: params.RecommendationHandler,
		authMiddleware:        params.AuthMiddleware,
		metrics:               params.Metrics,
		config:                params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	auth := r.authMiddleware.Authenticate
	identify := r.authMiddleware.Identify
	producerOnly := r.authMiddleware.RequireRole(entity.RoleProducer)
	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
	}

	api.GET("/user/profile", r.userHandler.GetProfile, identify)
	api.PUT("/user/profile", r.userHandler.UpdateProfile, auth)
	api.GET("/users/wallet/:address", r.userHandler.GetByWallet, identify)

	// Products
	api.POST("/addProduct", r.productHandler.AddProduct, auth, producerOnly)
	api.GET("/products", r.productHandler.ListProducts)
	api.GET("/products/enhanced", r.productHandler.ListEnhancedProducts)
	api.POST("/products/enhanced", r.productHandler.AddEnhancedProduct, auth, producerOnly)
	api.GET("/products/:id", r.productHandler.GetProduct)

	// Raw materials
	api.GET("/rawMaterial", r.rawMaterialHandler.List)
	api.POST("/rawMaterial", r.rawMaterialHandler.Post, auth)
	api.GET("/rawMaterial/:id", r.rawMaterialHandler.Get)
	api.POST("/rawmaterial/purchase", r.rawMaterialHandler.RecordPayment, auth, producerOnly)
	api.POST("/rawmaterial/tracking", r.rawMaterialHandler.AppendTracking, auth)

	// Purchases and tracking
	api.POST("/purchase/create", r.purchaseHandler.CreatePurchase, auth)
	api.GET("/purchases/user", r.purchaseHandler.ListUserPurchases)
	api.POST("/tracking/update", r.trackingHandler.PostUpdate, auth)
	api.GET("/tracking/:purchaseId", r.trackingHandler.GetTracking)
	api.PUT("/tracking/:purchaseId", r.trackingHandler.UpdateTracking, auth)
	api.GET("/tracking/:purchaseId/qr", r.trackingHandler.GetQRCode)

	api.GET("/recommendations", r.recommendationHandler.Recommend)
}
