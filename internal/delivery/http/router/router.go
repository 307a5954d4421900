// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"store/internal/delivery/http/middleware"
	"store/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	AddressHandler  *handler.AddressHandler
	DistrictHandler *handler.DistrictHandler
	ProductHandler  *handler.ProductHandler
	OrderHandler    *handler.OrderHandler

	AuthMiddleware    *middleware.AuthMiddleware
	MetricsMiddleware *middleware.MetricsMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check and scrape endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", r.params.MetricsMiddleware.Handler())

	api := e.Group("/api")

	// Account routes without authentication
	userGroup := api.Group("/users")
	{
		userGroup.POST("/register", r.params.UserHandler.Register)
		userGroup.POST("/login", r.params.UserHandler.Login)
	}

	// Account routes that require authentication
	meGroup := api.Group("/users/me")
	meGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		meGroup.PUT("/password", r.params.UserHandler.ChangePassword)
		meGroup.GET("/profile", r.params.UserHandler.GetProfile)
		meGroup.PUT("/profile", r.params.UserHandler.UpdateProfile)
		meGroup.POST("/avatar", r.params.UserHandler.UploadAvatar)
	}

	// Shipping address routes, all owner-scoped
	addressGroup := api.Group("/addresses")
	addressGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		addressGroup.POST("", r.params.AddressHandler.Add)
		addressGroup.GET("", r.params.AddressHandler.List)
		addressGroup.GET("/:id", r.params.AddressHandler.GetDetail)
		addressGroup.PUT("/:id/default", r.params.AddressHandler.SetDefault)
		addressGroup.DELETE("/:id", r.params.AddressHandler.Delete)
	}

	// Region tree, public
	districtGroup := api.Group("/districts")
	{
		districtGroup.GET("", r.params.DistrictHandler.ListByParent)
		districtGroup.GET("/name", r.params.DistrictHandler.GetName)
	}

	// Catalog, public
	productGroup := api.Group("/products")
	{
		productGroup.GET("/hot", r.params.ProductHandler.HotList)
		productGroup.GET("/:id", r.params.ProductHandler.GetByID)
	}

	// Orders
	orderGroup := api.Group("/orders")
	orderGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		orderGroup.POST("", r.params.OrderHandler.Create)
		orderGroup.GET("", r.params.OrderHandler.List)
	}
}
