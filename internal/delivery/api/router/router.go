// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/config"
	"bazaar/internal/delivery/api/middleware"
	"bazaar/internal/delivery/api/router/handler"
	"bazaar/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AccountHandler *handler.AccountHandler
	CatalogHandler *handler.CatalogHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	AddressHandler *handler.AddressHandler
	ShopHandler    *handler.ShopHandler
	AdminHandler   *handler.AdminHandler
	TestHandler    *handler.TestHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	accountHandler *handler.AccountHandler
	catalogHandler *handler.CatalogHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	addressHandler *handler.AddressHandler
	shopHandler    *handler.ShopHandler
	adminHandler   *handler.AdminHandler
	testHandler    *handler.TestHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		accountHandler: params.AccountHandler,
		catalogHandler: params.CatalogHandler,
		cartHandler:    params.CartHandler,
		orderHandler:   params.OrderHandler,
		addressHandler: params.AddressHandler,
		shopHandler:    params.ShopHandler,
		adminHandler:   params.AdminHandler,
		testHandler:    params.TestHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/signin", r.authHandler.SignIn)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/signout", r.authHandler.SignOut)
	}

	apiV1 := e.Group("/api/v1")

	// Public storefront
	catalogGroup := apiV1.Group("/catalog")
	{
		catalogGroup.GET("/products", r.catalogHandler.ListProducts)
		catalogGroup.GET("/products/:id", r.catalogHandler.GetProduct)
		catalogGroup.GET("/shops", r.catalogHandler.ListShops)
		catalogGroup.GET("/shops/:id", r.catalogHandler.GetShop)
	}

	// Guard decision for clients; anonymous callers are answered, not rejected
	apiV1.GET("/me/access", r.accountHandler.CheckAccess, r.authMiddleware.Identify)

	// Everything below requires a session; the role is resolved per request
	authed := apiV1.Group("", r.authMiddleware.Authenticate)

	meGroup := authed.Group("/me")
	{
		meGroup.GET("", r.accountHandler.GetProfile)
		meGroup.PUT("", r.accountHandler.UpdateProfile)
	}

	addressesGroup := authed.Group("/addresses")
	{
		addressesGroup.GET("", r.addressHandler.ListAddresses)
		addressesGroup.POST("", r.addressHandler.CreateAddress)
		addressesGroup.PUT("/:id", r.addressHandler.UpdateAddress)
		addressesGroup.DELETE("/:id", r.addressHandler.DeleteAddress)
		addressesGroup.PUT("/:id/default", r.addressHandler.SetDefaultAddress)
	}

	cartGroup := authed.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddToCart)
		cartGroup.PUT("/items/:id", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveLine)
	}

	// Order reads are shared by purchaser, owning shop owner and admin; the usecase checks visibility
	ordersGroup := authed.Group("/orders")
	{
		ordersGroup.POST("", r.orderHandler.PlaceOrder)
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.POST("/:id/cancel", r.orderHandler.CancelOrder)
		ordersGroup.GET("/:id/qr", r.orderHandler.OrderQRCode)
		ordersGroup.GET("/:id/map", r.orderHandler.OrderMap)
		ordersGroup.GET("/:id/map.geojson", r.orderHandler.OrderGeoJSON)
	}

	shopGroup := authed.Group("/shop", r.authMiddleware.RequireRole(entity.RoleShopOwner))
	{
		shopGroup.POST("", r.shopHandler.CreateShop)
		shopGroup.PUT("", r.shopHandler.UpdateShop)
		shopGroup.GET("/dashboard", r.shopHandler.Dashboard)
		shopGroup.GET("/revenue", r.orderHandler.Revenue)

		shopGroup.GET("/products", r.catalogHandler.ListOwnProducts)
		shopGroup.POST("/products", r.catalogHandler.CreateProduct)
		shopGroup.PUT("/products/:id", r.catalogHandler.UpdateProduct)
		shopGroup.DELETE("/products/:id", r.catalogHandler.DeleteProduct)

		shopGroup.GET("/orders", r.orderHandler.ListShopOrders)
		shopGroup.PUT("/orders/:id/status", r.orderHandler.UpdateStatus)
	}

	adminGroup := authed.Group("/admin", r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/shops", r.adminHandler.ListShops)
		adminGroup.POST("/shops/:id/approve", r.adminHandler.ApproveShop)
		adminGroup.POST("/shops/:id/reject", r.adminHandler.RejectShop)
		adminGroup.POST("/shops/:id/deactivate", r.adminHandler.DeactivateShop)
		adminGroup.PUT("/users/:id/role", r.adminHandler.AssignRole)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
		testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
	}
}
