package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piyathilaka/routemate/internal/pkg/middleware"
	"github.com/piyathilaka/routemate/internal/pkg/models"
	httpHandler "github.com/piyathilaka/routemate/services/boarding/handler/http"
)

// Handler coordinates the boarding service HTTP handlers
type Handler struct {
	ticketHandler *httpHandler.TicketHandler
	pickupHandler *httpHandler.PickupHandler
	callHandler   *httpHandler.CallHandler
	cfg           *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	ticketHandler *httpHandler.TicketHandler,
	pickupHandler *httpHandler.PickupHandler,
	callHandler *httpHandler.CallHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		ticketHandler: ticketHandler,
		pickupHandler: pickupHandler,
		callHandler:   callHandler,
		cfg:           cfg,
	}
}

// RegisterRoutes registers all routes. Every endpoint is crew-only: scans,
// pickup transitions and masked calls all act on someone else's booking.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	crew := e.Group("",
		middleware.JWTAuthMiddleware(h.cfg.JWT),
		middleware.RequireRole("crew"),
	)

	crew.POST("/tickets/validate", h.ticketHandler.ValidateTicket)
	crew.POST("/tickets/:bookingId/use", h.ticketHandler.MarkTicketUsed)

	crew.POST("/pickups/:bookingId/confirm", h.pickupHandler.ConfirmPickup)
	crew.POST("/pickups/:bookingId/no-answer", h.pickupHandler.MarkNoAnswer)
	crew.POST("/pickups/:bookingId/cancel", h.pickupHandler.CancelPickup)
	crew.POST("/pickups/:bookingId/picked-up", h.pickupHandler.MarkPickedUp)
	crew.POST("/pickups/:bookingId/no-show", h.pickupHandler.MarkNoShow)

	crew.GET("/bookings/:bookingId", h.pickupHandler.GetBookingDetails)
	crew.POST("/calls/bookings/:bookingId", h.callHandler.InitiateCall)
}
