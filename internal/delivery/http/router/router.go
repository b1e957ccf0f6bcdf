// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"employeesys/internal/delivery/http/middleware"
	"employeesys/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	EmployeeHandler *handler.EmployeeHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	employeeHandler *handler.EmployeeHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		employeeHandler: params.EmployeeHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application. Each route
// lists its guards in the exact order they must run.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	guard := r.authMiddleware

	employees := e.Group("/api/employees")
	{
		// Public operations
		employees.POST("", r.employeeHandler.Register)
		employees.POST("/login", r.employeeHandler.Login)

		// Token-only operations
		employees.POST("/resend", r.employeeHandler.Resend, guard.RequireToken)
		employees.PUT("/verify/:code", r.employeeHandler.Verify, guard.RequireToken)

		// Token + verified e-mail
		employees.GET("", r.employeeHandler.List, guard.RequireToken, guard.RequireVerifiedEmail)
		employees.GET("/:id", r.employeeHandler.Detail, guard.RequireToken, guard.RequireVerifiedEmail)

		// Token + admin-or-self + verified e-mail
		employees.PUT("/:id", r.employeeHandler.Update,
			guard.RequireToken, guard.RequireAdminOrSelf, guard.RequireVerifiedEmail)
		employees.DELETE("/:id", r.employeeHandler.Delete,
			guard.RequireToken, guard.ForbidSelfDelete, guard.RequireAdminOrSelf, guard.RequireVerifiedEmail)
	}
}
