// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vtpgate/internal/delivery/http/middleware"
	"vtpgate/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	WebhookHandler  *handler.WebhookHandler
	AccountHandler  *handler.AccountHandler
	StoreHandler    *handler.StoreHandler
	ShipmentHandler *handler.ShipmentHandler
	AuditHandler    *handler.AuditHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	webhookHandler  *handler.WebhookHandler
	accountHandler  *handler.AccountHandler
	storeHandler    *handler.StoreHandler
	shipmentHandler *handler.ShipmentHandler
	auditHandler    *handler.AuditHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		webhookHandler:  params.WebhookHandler,
		accountHandler:  params.AccountHandler,
		storeHandler:    params.StoreHandler,
		shipmentHandler: params.ShipmentHandler,
		auditHandler:    params.AuditHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Carrier callback. Authenticated per item by the webhook token, not by
	// an operator JWT.
	e.POST("/webhook/order-status", r.webhookHandler.OrderStatus)

	// Operator management API
	accountGroup := e.Group("/accounts")
	accountGroup.Use(r.authMiddleware.Authenticate)
	{
		accountGroup.POST("", r.accountHandler.Create)
		accountGroup.GET("", r.accountHandler.List)
		accountGroup.GET("/:id", r.accountHandler.Get)
		accountGroup.PATCH("/:id", r.accountHandler.Update)
		accountGroup.DELETE("/:id", r.accountHandler.Delete)
		accountGroup.POST("/:id/verify", r.accountHandler.Verify)

		accountGroup.POST("/:id/stores/sync", r.storeHandler.Sync)
		accountGroup.GET("/:id/stores", r.storeHandler.List)
		accountGroup.POST("/:id/price", r.shipmentHandler.Quote)
		accountGroup.GET("/:id/audit", r.auditHandler.ListByAccount)
	}

	storeGroup := e.Group("/stores")
	storeGroup.Use(r.authMiddleware.Authenticate)
	{
		storeGroup.POST("/:id/default", r.storeHandler.SetDefault)
	}

	shipmentGroup := e.Group("/shipments")
	shipmentGroup.Use(r.authMiddleware.Authenticate)
	{
		shipmentGroup.POST("", r.shipmentHandler.Create)
		shipmentGroup.GET("", r.shipmentHandler.List)
		shipmentGroup.GET("/:orderNumber", r.shipmentHandler.Get)
		shipmentGroup.PUT("/:orderNumber", r.shipmentHandler.Edit)
		shipmentGroup.GET("/:orderNumber/history", r.shipmentHandler.History)
		shipmentGroup.GET("/:orderNumber/audit", r.auditHandler.ListByShipment)
		shipmentGroup.GET("/:orderNumber/label", r.shipmentHandler.Label)
		shipmentGroup.POST("/:orderNumber/action", r.shipmentHandler.Action)
		shipmentGroup.POST("/:orderNumber/cancel", r.shipmentHandler.Cancel)
	}

	// Housekeeping, restricted to admins
	auditGroup := e.Group("/audit")
	auditGroup.Use(r.authMiddleware.Authenticate)
	auditGroup.Use(r.authMiddleware.RequireRole("admin"))
	{
		auditGroup.GET("/failures", r.auditHandler.ListFailures)
		auditGroup.POST("/purge", r.auditHandler.Purge)
	}
}
