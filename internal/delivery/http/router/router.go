// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"account/config"
	"account/internal/delivery/http/middleware"
	"account/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	AuthenticationHandler *handler.AuthenticationHandler
	AuthMiddleware        *middleware.AuthMiddleware
	Config                *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthenticationHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthenticationHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// API explorer
	specGroup := e.Group("/" + strings.Trim(r.config.HTTP.SpecPath, "/"))
	{
		specGroup.GET("", handler.SwaggerUI)
		specGroup.GET("/openapi.yaml", handler.OpenAPISpec)
	}

	api := e.Group("/" + strings.Trim(r.config.HTTP.GlobalPrefix, "/"))

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)

		// Routes that require an access token. Static paths win over :id.
		authGroup.GET("/check", r.authHandler.Check, r.authMiddleware.Authenticate)
		authGroup.PATCH("/password", r.authHandler.ChangePassword, r.authMiddleware.Authenticate)
		authGroup.GET("/:id", r.authHandler.Show, r.authMiddleware.Authenticate)
	}
}
