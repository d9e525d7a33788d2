package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piyathilaka/routemate/internal/pkg/middleware"
	"github.com/piyathilaka/routemate/internal/pkg/models"
	httpHandler "github.com/piyathilaka/routemate/services/tracking/handler/http"
	natsHandler "github.com/piyathilaka/routemate/services/tracking/handler/nats"
	wsHandler "github.com/piyathilaka/routemate/services/tracking/handler/websocket"
)

// Handler coordinates all protocol handlers for the tracking service
type Handler struct {
	busHandler  *httpHandler.BusHandler
	wsManager   *wsHandler.WebSocketManager
	natsHandler *natsHandler.NatsHandler
	cfg         *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	busHandler *httpHandler.BusHandler,
	wsManager *wsHandler.WebSocketManager,
	natsHandler *natsHandler.NatsHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		busHandler:  busHandler,
		wsManager:   wsManager,
		natsHandler: natsHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers all protocol handlers and their routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Protected HTTP routes (user-facing)
	protected := e.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))

	busGroup := protected.Group("/bus")
	busGroup.GET("/my-bus", h.busHandler.GetMyBus)
	busGroup.GET("/route/:routeId", h.busHandler.GetRouteBuses)
	busGroup.GET("/routes", h.busHandler.ListRoutes)

	// Service-to-service routes, authenticated by API key
	internal := e.Group("/internal", middleware.ValidateAPIKey("booking-service", "fleet-service"))
	internal.GET("/buses/nearby", h.busHandler.GetNearbyBuses)

	// WebSocket endpoint; the manager authenticates during the upgrade
	e.GET("/ws", h.wsManager.HandleWebSocket)
}
