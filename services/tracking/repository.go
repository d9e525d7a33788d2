package tracking

import (
	"context"

	"github.com/piyathilaka/routemate/internal/pkg/models"
)

// LocationRepo is the LocationStore: append-only samples plus the live
// position and active flag per bus.
type LocationRepo interface {
	// AppendSample stores one immutable location sample.
	AppendSample(ctx context.Context, sample *models.LocationSample) error

	// SetCurrentPosition overwrites the live position of a bus and marks
	// it active. Last write wins; no cross-ping ordering is enforced.
	SetCurrentPosition(ctx context.Context, sample *models.LocationSample) error

	// GetCurrentPosition returns the live position of a bus, if any.
	GetCurrentPosition(ctx context.Context, busID string) (*models.LocationSample, error)

	// MarkInactive clears the active flag of a bus.
	MarkInactive(ctx context.Context, busID string) error

	// NearbyBuses returns bus ids on a route within radiusKm of a point.
	NearbyBuses(ctx context.Context, routeID string, point models.Location, radiusKm float64) ([]string, error)
}

// BusRepo reads and updates the registered bus records. Registration is
// owned by the fleet collaborator; only tracking fields are written here.
type BusRepo interface {
	GetBusByDriver(ctx context.Context, driverID string) (*models.Bus, error)
	GetBus(ctx context.Context, busID string) (*models.Bus, error)
	GetBusesByRoute(ctx context.Context, routeID string) ([]*models.Bus, error)
	ListRoutes(ctx context.Context) ([]string, error)

	// UpdateLastPosition writes last known position and active flag.
	UpdateLastPosition(ctx context.Context, busID string, loc models.Location, isActive bool) error

	// SetInactive forces the active flag false regardless of ping timing.
	SetInactive(ctx context.Context, busID string) error
}
