package usecase

import (
	"context"
	"time"

	"github.com/piyathilaka/routemate/internal/pkg/logger"
	"github.com/piyathilaka/routemate/internal/pkg/models"
	"github.com/piyathilaka/routemate/internal/utils"
	"github.com/piyathilaka/routemate/services/tracking"
)

// LocationUC implements the tracking.LocationUseCase interface
type LocationUC struct {
	locationRepo tracking.LocationRepo
	busRepo      tracking.BusRepo
	gw           tracking.TrackingGW
	cfg          *models.Config
}

// NewLocationUC creates a new location use case
func NewLocationUC(
	locationRepo tracking.LocationRepo,
	busRepo tracking.BusRepo,
	gw tracking.TrackingGW,
	cfg *models.Config,
) *LocationUC {
	return &LocationUC{
		locationRepo: locationRepo,
		busRepo:      busRepo,
		gw:           gw,
		cfg:          cfg,
	}
}

// IngestPing validates a driver ping, appends an immutable sample, refreshes
// the bus's live position and active flag, and publishes the update for
// fan-out. The timestamp is server-assigned.
func (uc *LocationUC) IngestPing(ctx context.Context, driverID string, ping *models.LocationPing) error {
	if err := validatePing(ping); err != nil {
		return err
	}

	bus, err := uc.busRepo.GetBus(ctx, ping.BusID)
	if err != nil {
		return err
	}
	if bus.DriverID != driverID {
		logger.Warn("Ping for a bus the driver does not own",
			logger.String("driver_id", driverID),
			logger.String("bus_id", ping.BusID))
		return tracking.ErrNotBusDriver
	}

	sample := &models.LocationSample{
		BusID:     ping.BusID,
		RouteID:   ping.RouteID,
		Latitude:  *ping.Lat,
		Longitude: *ping.Lng,
		Timestamp: time.Now().UTC(),
	}

	// Log distance from the previous fix; stale out-of-order pings are
	// accepted (last write wins) but a large jump is worth seeing.
	if prev, err := uc.locationRepo.GetCurrentPosition(ctx, ping.BusID); err == nil && prev != nil {
		moved := utils.CalculateDistance(
			utils.GeoPoint{Latitude: prev.Latitude, Longitude: prev.Longitude},
			utils.GeoPoint{Latitude: sample.Latitude, Longitude: sample.Longitude},
		)
		logger.Debug("Bus position update",
			logger.String("bus_id", ping.BusID),
			logger.String("route_id", ping.RouteID),
			logger.Float64("moved_km", moved))
	}

	if err := uc.locationRepo.AppendSample(ctx, sample); err != nil {
		return err
	}

	if err := uc.locationRepo.SetCurrentPosition(ctx, sample); err != nil {
		return err
	}

	if err := uc.busRepo.UpdateLastPosition(ctx, ping.BusID, models.Location{
		Latitude:  sample.Latitude,
		Longitude: sample.Longitude,
		Timestamp: sample.Timestamp,
	}, true); err != nil {
		return err
	}

	event := &models.BusLocationEvent{
		BusID:     sample.BusID,
		RouteID:   sample.RouteID,
		Latitude:  sample.Latitude,
		Longitude: sample.Longitude,
		Timestamp: sample.Timestamp,
	}
	if err := uc.gw.PublishLocationUpdate(ctx, event); err != nil {
		// The sample is stored; subscribers just miss this tick.
		logger.Warn("Failed to publish location update",
			logger.String("bus_id", sample.BusID),
			logger.Err(err))
	}

	return nil
}

// StopTracking forces the bus inactive and tells subscribers. Idempotent.
func (uc *LocationUC) StopTracking(ctx context.Context, driverID string, busID string) error {
	if busID == "" {
		return tracking.ErrInvalidLocation
	}

	bus, err := uc.busRepo.GetBus(ctx, busID)
	if err != nil {
		return err
	}
	if bus.DriverID != driverID {
		return tracking.ErrNotBusDriver
	}

	if err := uc.locationRepo.MarkInactive(ctx, busID); err != nil {
		return err
	}
	if err := uc.busRepo.SetInactive(ctx, busID); err != nil {
		return err
	}

	event := &models.BusStoppedEvent{
		BusID:   busID,
		RouteID: bus.RouteID,
		Stopped: time.Now().UTC(),
	}
	if err := uc.gw.PublishBusStopped(ctx, event); err != nil {
		logger.Warn("Failed to publish bus stopped event",
			logger.String("bus_id", busID),
			logger.Err(err))
	}

	logger.Info("Bus tracking stopped",
		logger.String("bus_id", busID),
		logger.String("driver_id", driverID))
	return nil
}

// GetBusByDriver returns the driver's bus with the inactivity window applied.
func (uc *LocationUC) GetBusByDriver(ctx context.Context, driverID string) (*models.Bus, error) {
	bus, err := uc.busRepo.GetBusByDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}
	uc.applyWindow(bus)
	return bus, nil
}

// GetBusesByRoute returns the buses registered on a route.
func (uc *LocationUC) GetBusesByRoute(ctx context.Context, routeID string) ([]*models.Bus, error) {
	buses, err := uc.busRepo.GetBusesByRoute(ctx, routeID)
	if err != nil {
		return nil, err
	}
	for _, bus := range buses {
		uc.applyWindow(bus)
	}
	return buses, nil
}

// ListRoutes returns all route identifiers with registered buses.
func (uc *LocationUC) ListRoutes(ctx context.Context) ([]string, error) {
	return uc.busRepo.ListRoutes(ctx)
}

// NearbyBuses returns bus ids on a route within the configured proximity
// radius of a point.
func (uc *LocationUC) NearbyBuses(ctx context.Context, routeID string, lat, lng float64) ([]string, error) {
	if routeID == "" {
		return nil, tracking.ErrRouteRequired
	}
	if !utils.IsFiniteCoordinate(lat, lng) {
		return nil, tracking.ErrInvalidLocation
	}

	return uc.locationRepo.NearbyBuses(ctx, routeID, models.Location{
		Latitude:  lat,
		Longitude: lng,
	}, uc.cfg.Tracking.ProximityRadiusKm)
}

// applyWindow downgrades the stored active flag when the last ping is
// older than the inactivity window.
func (uc *LocationUC) applyWindow(bus *models.Bus) {
	window := time.Duration(uc.cfg.Tracking.InactiveAfterSeconds) * time.Second
	bus.IsActive = bus.ActiveWithin(window, time.Now())
}

// validatePing enforces presence of all four ping fields. Zero is a valid
// coordinate; a nil pointer means the field was absent from the payload.
func validatePing(ping *models.LocationPing) error {
	if ping == nil || ping.BusID == "" || ping.RouteID == "" {
		return tracking.ErrInvalidLocation
	}
	if ping.Lat == nil || ping.Lng == nil {
		return tracking.ErrInvalidLocation
	}
	if !utils.IsFiniteCoordinate(*ping.Lat, *ping.Lng) {
		return tracking.ErrInvalidLocation
	}
	return nil
}
