package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/piyathilaka/routemate/internal/pkg/constants"
	"github.com/piyathilaka/routemate/internal/pkg/database"
	"github.com/piyathilaka/routemate/internal/pkg/models"
	"github.com/piyathilaka/routemate/internal/utils"
	"github.com/piyathilaka/routemate/services/tracking"
)

type locationRepo struct {
	db          *sqlx.DB
	redisClient *database.RedisClient
	liveTTL     time.Duration
}

// NewLocationRepository creates the LocationStore: postgres keeps the
// append-only sample log, redis keeps the live position per bus and a geo
// index per route.
func NewLocationRepository(db *sqlx.DB, redisClient *database.RedisClient, cfg *models.Config) tracking.LocationRepo {
	return &locationRepo{
		db:          db,
		redisClient: redisClient,
		liveTTL:     time.Duration(cfg.Tracking.SampleTTLHours) * time.Hour,
	}
}

// AppendSample stores one immutable sample. Samples are never updated or
// deleted here; retention runs outside the core.
func (r *locationRepo) AppendSample(ctx context.Context, sample *models.LocationSample) error {
	query := `
		INSERT INTO location_samples (bus_id, route_id, latitude, longitude, recorded_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query,
		sample.BusID,
		sample.RouteID,
		sample.Latitude,
		sample.Longitude,
		sample.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to append location sample: %w", err)
	}

	return nil
}

// SetCurrentPosition overwrites the live position hash and the route geo
// index. Last write wins.
func (r *locationRepo) SetCurrentPosition(ctx context.Context, sample *models.LocationSample) error {
	point := utils.GeoPoint{Latitude: sample.Latitude, Longitude: sample.Longitude}

	locationKey := fmt.Sprintf(constants.KeyBusLocation, sample.BusID)
	locationData := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(sample.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(sample.Longitude, 'f', -1, 64),
		constants.FieldTimestamp: strconv.FormatInt(sample.Timestamp.Unix(), 10),
		constants.FieldActive:    "1",
		constants.FieldRouteID:   sample.RouteID,
		constants.FieldGeohash:   utils.EncodePoint(point, constants.GeohashPrecision),
	}

	if err := r.redisClient.HSet(ctx, locationKey, locationData); err != nil {
		return fmt.Errorf("failed to store live position: %w", err)
	}
	if err := r.redisClient.Expire(ctx, locationKey, r.liveTTL); err != nil {
		return fmt.Errorf("failed to set live position TTL: %w", err)
	}

	geoKey := fmt.Sprintf(constants.KeyRouteGeo, sample.RouteID)
	if err := r.redisClient.GeoAdd(ctx, geoKey, sample.Longitude, sample.Latitude, sample.BusID); err != nil {
		return fmt.Errorf("failed to update route geo index: %w", err)
	}

	return nil
}

// GetCurrentPosition returns the live position of a bus from redis.
func (r *locationRepo) GetCurrentPosition(ctx context.Context, busID string) (*models.LocationSample, error) {
	locationKey := fmt.Sprintf(constants.KeyBusLocation, busID)

	values, err := r.redisClient.HGetAll(ctx, locationKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get live position: %w", err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no live position for bus %s", busID)
	}

	lat, err := strconv.ParseFloat(values[constants.FieldLatitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}

	lng, err := strconv.ParseFloat(values[constants.FieldLongitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}

	ts, err := strconv.ParseInt(values[constants.FieldTimestamp], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp: %w", err)
	}

	return &models.LocationSample{
		BusID:     busID,
		RouteID:   values[constants.FieldRouteID],
		Latitude:  lat,
		Longitude: lng,
		Timestamp: time.Unix(ts, 0),
	}, nil
}

// MarkInactive clears the active flag on the live position hash. The hash
// itself is kept so the last known position stays readable.
func (r *locationRepo) MarkInactive(ctx context.Context, busID string) error {
	locationKey := fmt.Sprintf(constants.KeyBusLocation, busID)
	if err := r.redisClient.HSet(ctx, locationKey, map[string]interface{}{
		constants.FieldActive: "0",
	}); err != nil {
		return fmt.Errorf("failed to mark bus inactive: %w", err)
	}
	return nil
}

// NearbyBuses returns bus ids on a route within radiusKm of a point. The
// geo set outlives the TTL'd live hashes, so each candidate is checked
// against the geohash cell stored with its live position: entries whose
// hash expired or moved out of the query cell neighborhood are dropped.
func (r *locationRepo) NearbyBuses(ctx context.Context, routeID string, point models.Location, radiusKm float64) ([]string, error) {
	geoKey := fmt.Sprintf(constants.KeyRouteGeo, routeID)

	locations, err := r.redisClient.GeoRadius(ctx, geoKey, point.Longitude, point.Latitude, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("failed to query route geo index: %w", err)
	}

	cells := utils.CellWithNeighbors(utils.GeoPoint{
		Latitude:  point.Latitude,
		Longitude: point.Longitude,
	}, constants.GeohashPrecision)

	busIDs := make([]string, 0, len(locations))
	for _, loc := range locations {
		locationKey := fmt.Sprintf(constants.KeyBusLocation, loc.Name)
		cell, err := r.redisClient.HGet(ctx, locationKey, constants.FieldGeohash)
		if err != nil || cell == "" {
			// Live hash expired; the geo entry is stale.
			continue
		}
		if !containsCell(cells, cell) {
			continue
		}
		busIDs = append(busIDs, loc.Name)
	}
	return busIDs, nil
}

func containsCell(cells []string, cell string) bool {
	for _, c := range cells {
		if c == cell {
			return true
		}
	}
	return false
}
