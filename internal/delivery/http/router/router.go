// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	ProfileHandler   *handler.ProfileHandler
	ProductHandler   *handler.ProductHandler
	CartHandler      *handler.CartHandler
	OrderHandler     *handler.OrderHandler
	AnalyticsHandler *handler.AnalyticsHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware

	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.params.UserHandler.Register)
		authGroup.POST("/login", r.params.UserHandler.Login)
	}

	// Catalog reads are public; writes require a seller or admin account.
	productGroup := api.Group("/products")
	{
		productGroup.GET("", r.params.ProductHandler.ListProducts)
		productGroup.GET("/:id", r.params.ProductHandler.GetProduct)
		productGroup.POST("", r.params.ProductHandler.CreateProduct, auth.Authenticate, auth.RequireRole(entity.RoleSeller))
		productGroup.PUT("/:id", r.params.ProductHandler.UpdateProduct, auth.Authenticate, auth.RequireRole(entity.RoleSeller))
		productGroup.DELETE("/:id", r.params.ProductHandler.DeleteProduct, auth.Authenticate, auth.RequireRole(entity.RoleSeller))
	}

	cartGroup := api.Group("/cart")
	cartGroup.Use(auth.Authenticate)
	{
		cartGroup.GET("", r.params.CartHandler.GetCart)
		cartGroup.DELETE("", r.params.CartHandler.Clear)
		cartGroup.POST("/items", r.params.CartHandler.AddItem)
		cartGroup.PUT("/items/:productId", r.params.CartHandler.SetItemQuantity)
		cartGroup.DELETE("/items/:productId", r.params.CartHandler.RemoveItem)
	}

	orderGroup := api.Group("/orders")
	orderGroup.Use(auth.Authenticate)
	{
		orderGroup.POST("", r.params.OrderHandler.Checkout)
		orderGroup.GET("", r.params.OrderHandler.ListOrders)
		orderGroup.GET("/:id", r.params.OrderHandler.GetOrder)
		orderGroup.PUT("/:id/status", r.params.OrderHandler.UpdateStatus)
	}

	// The payment provider calls back without a bearer token; the handler
	// checks the shared callback token instead.
	api.POST("/payments/callback", r.params.OrderHandler.PaymentCallback)

	userGroup := api.Group("/users")
	userGroup.Use(auth.Authenticate)
	{
		userGroup.GET("/profile", r.params.ProfileHandler.GetProfile)
		userGroup.PUT("/profile", r.params.ProfileHandler.UpdateProfile)
		userGroup.GET("/addresses", r.params.ProfileHandler.ListAddresses)
		userGroup.POST("/addresses", r.params.ProfileHandler.AddAddress)
		userGroup.PUT("/addresses/:id", r.params.ProfileHandler.UpdateAddress)
		userGroup.DELETE("/addresses/:id", r.params.ProfileHandler.RemoveAddress)
	}

	analyticsGroup := api.Group("/analytics")
	analyticsGroup.Use(auth.Authenticate, auth.RequireRole(entity.RoleSeller))
	{
		analyticsGroup.GET("/dashboard", r.params.AnalyticsHandler.Dashboard)
	}
}
