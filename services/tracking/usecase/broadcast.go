package usecase

import (
	"time"

	"github.com/piyathilaka/routemate/internal/pkg/constants"
	"github.com/piyathilaka/routemate/internal/pkg/logger"
	"github.com/piyathilaka/routemate/internal/pkg/models"
	"github.com/piyathilaka/routemate/services/tracking"
)

// RouterUC implements tracking.BroadcastRouter on top of an injected
// ConnectionRegistry, so fan-out logic is testable without a transport.
type RouterUC struct {
	registry tracking.ConnectionRegistry
}

// NewRouterUC creates a new broadcast router
func NewRouterUC(registry tracking.ConnectionRegistry) *RouterUC {
	return &RouterUC{registry: registry}
}

// JoinRoute subscribes a connection to a route channel. Joining a route the
// connection already belongs to is a no-op for the subscriber.
func (r *RouterUC) JoinRoute(client *models.WebSocketClient, routeID string) error {
	if routeID == "" {
		return tracking.ErrRouteRequired
	}

	r.registry.Join(routeID, client)
	logger.Debug("Connection joined route",
		logger.String("user_id", client.UserID),
		logger.String("route_id", routeID),
		logger.Int("room_size", r.registry.RoomSize(routeID)))
	return nil
}

// LeaveRoute unsubscribes a connection. A missing route id is silently
// ignored, matching the wire contract.
func (r *RouterUC) LeaveRoute(client *models.WebSocketClient, routeID string) {
	if routeID == "" {
		return
	}
	r.registry.Leave(routeID, client.UserID)
}

// HandleLocationEvent fans one accepted ping out to the route's room.
// Connections that never joined, or have left, receive nothing.
func (r *RouterUC) HandleLocationEvent(event *models.BusLocationEvent) {
	r.registry.Broadcast(event.RouteID, constants.EventBusUpdate, models.BusUpdate{
		BusID:     event.BusID,
		Lat:       event.Latitude,
		Lng:       event.Longitude,
		Timestamp: event.Timestamp.UTC().Format(time.RFC3339),
	})
}

// HandleStoppedEvent pushes the active-to-inactive transition so passengers
// can tell "offline" apart from a stale position.
func (r *RouterUC) HandleStoppedEvent(event *models.BusStoppedEvent) {
	r.registry.Broadcast(event.RouteID, constants.EventBusStatus, models.BusStatusUpdate{
		BusID:    event.BusID,
		IsActive: false,
	})
}
