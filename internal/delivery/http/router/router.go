// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"userhub/internal/delivery/http/middleware"
	"userhub/internal/delivery/http/router/handler"
	"userhub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Login and token refresh are the only open API routes; everything else under
// /api requires a valid bearer token, and the management routes additionally
// require a role.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Open routes: no token required.
	api.POST("/login", r.authHandler.Login)
	api.GET("/token/refresh", r.authHandler.Refresh)

	// Everything below requires an authenticated principal.
	authed := api.Group("", r.authMiddleware.Authenticate)
	{
		authed.GET("/user/me", r.userHandler.Me)
		authed.GET("/users", r.userHandler.ListUsers, r.authMiddleware.RequireRole(entity.RoleUser))
		authed.POST("/user/save", r.userHandler.SaveUser, r.authMiddleware.RequireRole(entity.RoleAdmin))
		authed.POST("/role/save", r.userHandler.SaveRole, r.authMiddleware.RequireRole(entity.RoleAdmin))
		authed.POST("/role/addtouser", r.userHandler.AddRoleToUser, r.authMiddleware.RequireRole(entity.RoleAdmin))
	}
}
