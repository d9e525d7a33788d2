package tracking

import (
	"context"

	"github.com/piyathilaka/routemate/internal/pkg/models"
)

// LocationUseCase is the ingest side: it accepts driver pings, persists
// them, and hands accepted updates to the broadcast side.
type LocationUseCase interface {
	// IngestPing validates and stores a driver position report, then
	// publishes it for fan-out. driverID is the authenticated sender.
	IngestPing(ctx context.Context, driverID string, ping *models.LocationPing) error

	// StopTracking marks the bus inactive. Idempotent; supersedes any
	// in-flight ping for the same bus from the subscriber's perspective.
	StopTracking(ctx context.Context, driverID string, busID string) error

	// GetBusByDriver returns the bus owned by a driver with its effective
	// active flag.
	GetBusByDriver(ctx context.Context, driverID string) (*models.Bus, error)

	// GetBusesByRoute returns the buses registered on a route.
	GetBusesByRoute(ctx context.Context, routeID string) ([]*models.Bus, error)

	// ListRoutes returns all route identifiers with registered buses.
	ListRoutes(ctx context.Context) ([]string, error)

	// NearbyBuses returns the ids of buses on a route currently within the
	// configured proximity radius of a point. Used by collaborator services.
	NearbyBuses(ctx context.Context, routeID string, lat, lng float64) ([]string, error)
}

// BroadcastRouter maintains route-channel membership and fans position
// updates out to subscribers.
type BroadcastRouter interface {
	// JoinRoute subscribes a connection to a route channel. Rejects an
	// empty route id; re-joining is a no-op.
	JoinRoute(client *models.WebSocketClient, routeID string) error

	// LeaveRoute unsubscribes a connection. No-op for an empty route id.
	LeaveRoute(client *models.WebSocketClient, routeID string)

	// HandleLocationEvent delivers a bus:update to every subscriber of
	// the event's route.
	HandleLocationEvent(event *models.BusLocationEvent)

	// HandleStoppedEvent delivers a bus:status inactive transition to the
	// route's subscribers.
	HandleStoppedEvent(event *models.BusStoppedEvent)
}
