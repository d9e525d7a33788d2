package tracking

import (
	"context"

	"github.com/piyathilaka/routemate/internal/pkg/models"
)

// TrackingGW publishes accepted tracking events for the broadcast side.
type TrackingGW interface {
	PublishLocationUpdate(ctx context.Context, event *models.BusLocationEvent) error
	PublishBusStopped(ctx context.Context, event *models.BusStoppedEvent) error
}

// ConnectionRegistry abstracts route-channel membership over the live
// transport so the router is testable without sockets. Implemented by the
// websocket manager.
type ConnectionRegistry interface {
	Join(routeID string, client *models.WebSocketClient)
	Leave(routeID string, userID string)
	Broadcast(routeID string, event string, data interface{})
	RoomSize(routeID string) int
}
