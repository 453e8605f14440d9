// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vesselwatch/internal/delivery/api/middleware"
	"vesselwatch/internal/delivery/api/router/handler"
	"vesselwatch/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PositionHandler         *handler.PositionHandler
	NotificationHandler     *handler.NotificationHandler
	BorderHandler           *handler.BorderHandler
	NotificationTypeHandler *handler.NotificationTypeHandler
	AuthMiddleware          *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	positionHandler         *handler.PositionHandler
	notificationHandler     *handler.NotificationHandler
	borderHandler           *handler.BorderHandler
	notificationTypeHandler *handler.NotificationTypeHandler
	authMiddleware          *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		positionHandler:         params.PositionHandler,
		notificationHandler:     params.NotificationHandler,
		borderHandler:           params.BorderHandler,
		notificationTypeHandler: params.NotificationTypeHandler,
		authMiddleware:          params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	auth := r.authMiddleware
	apiV1 := e.Group("/api/v1", auth.Authenticate)

	apiV1.POST("/positions", r.positionHandler.ReportPosition,
		auth.RequireRole(constants.RoleTracker, constants.RoleAdmin))

	notificationsGroup := apiV1.Group("/notifications", auth.RequireRole(constants.RoleOperator, constants.RoleAdmin))
	{
		notificationsGroup.GET("", r.notificationHandler.ListNotifications)
		notificationsGroup.GET("/:id", r.notificationHandler.GetNotification)
		notificationsGroup.GET("/:id/chain", r.notificationHandler.GetChain)
		notificationsGroup.POST("/:id/viewed", r.notificationHandler.MarkViewed)
		notificationsGroup.POST("/:id/cancel", r.notificationHandler.Cancel)
		notificationsGroup.POST("/:id/resolve", r.notificationHandler.Resolve)
	}

	adminGroup := apiV1.Group("/admin", auth.RequireRole(constants.RoleAdmin))

	borderGroup := adminGroup.Group("/border-points")
	{
		borderGroup.POST("", r.borderHandler.CreatePoint)
		borderGroup.GET("", r.borderHandler.ListPoints)
		borderGroup.POST("/import", r.borderHandler.Import)
		borderGroup.GET("/:id", r.borderHandler.GetPoint)
		borderGroup.PUT("/:id", r.borderHandler.UpdatePoint)
		borderGroup.DELETE("/:id", r.borderHandler.DeletePoint)
	}

	typesGroup := adminGroup.Group("/notification-types")
	{
		typesGroup.POST("", r.notificationTypeHandler.Create)
		typesGroup.GET("", r.notificationTypeHandler.List)
		typesGroup.GET("/:id", r.notificationTypeHandler.Get)
		typesGroup.PUT("/:id", r.notificationTypeHandler.Update)
		typesGroup.DELETE("/:id", r.notificationTypeHandler.Delete)
	}
}
