package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/piyathilaka/routemate/internal/pkg/models"
	"github.com/piyathilaka/routemate/services/tracking"
)

type busRepo struct {
	db *sqlx.DB
}

// NewBusRepository creates the bus record accessor. Buses are created by
// the fleet collaborator; only tracking fields are written here.
func NewBusRepository(db *sqlx.DB) tracking.BusRepo {
	return &busRepo{db: db}
}

const busColumns = `id, route_id, driver_id, plate_number, is_active, last_lat, last_lng, last_seen`

func (r *busRepo) GetBus(ctx context.Context, busID string) (*models.Bus, error) {
	query := fmt.Sprintf(`SELECT %s FROM buses WHERE id = $1`, busColumns)

	bus, err := scanBus(r.db.QueryRowContext(ctx, query, busID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, tracking.ErrBusNotFound
		}
		return nil, fmt.Errorf("failed to get bus: %w", err)
	}
	return bus, nil
}

func (r *busRepo) GetBusByDriver(ctx context.Context, driverID string) (*models.Bus, error) {
	query := fmt.Sprintf(`SELECT %s FROM buses WHERE driver_id = $1`, busColumns)

	bus, err := scanBus(r.db.QueryRowContext(ctx, query, driverID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, tracking.ErrBusNotFound
		}
		return nil, fmt.Errorf("failed to get bus by driver: %w", err)
	}
	return bus, nil
}

func (r *busRepo) GetBusesByRoute(ctx context.Context, routeID string) ([]*models.Bus, error) {
	query := fmt.Sprintf(`SELECT %s FROM buses WHERE route_id = $1 ORDER BY id`, busColumns)

	rows, err := r.db.QueryContext(ctx, query, routeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list route buses: %w", err)
	}
	defer rows.Close()

	var buses []*models.Bus
	for rows.Next() {
		bus, err := scanBus(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bus row: %w", err)
		}
		buses = append(buses, bus)
	}
	return buses, rows.Err()
}

func (r *busRepo) ListRoutes(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT route_id FROM buses ORDER BY route_id`

	var routes []string
	if err := r.db.SelectContext(ctx, &routes, query); err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}
	return routes, nil
}

func (r *busRepo) UpdateLastPosition(ctx context.Context, busID string, loc models.Location, isActive bool) error {
	query := `
		UPDATE buses
		SET last_lat = $2, last_lng = $3, last_seen = $4, is_active = $5
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, busID, loc.Latitude, loc.Longitude, loc.Timestamp, isActive)
	if err != nil {
		return fmt.Errorf("failed to update bus position: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return tracking.ErrBusNotFound
	}
	return nil
}

func (r *busRepo) SetInactive(ctx context.Context, busID string) error {
	query := `UPDATE buses SET is_active = false WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, busID); err != nil {
		return fmt.Errorf("failed to set bus inactive: %w", err)
	}
	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBus(row rowScanner) (*models.Bus, error) {
	bus := &models.Bus{}
	var lastLat, lastLng sql.NullFloat64
	var lastSeen sql.NullTime

	err := row.Scan(
		&bus.ID,
		&bus.RouteID,
		&bus.DriverID,
		&bus.PlateNumber,
		&bus.IsActive,
		&lastLat,
		&lastLng,
		&lastSeen,
	)
	if err != nil {
		return nil, err
	}

	if lastLat.Valid {
		bus.LastLat = lastLat.Float64
	}
	if lastLng.Valid {
		bus.LastLng = lastLng.Float64
	}
	if lastSeen.Valid {
		bus.LastSeen = lastSeen.Time
	} else {
		bus.LastSeen = time.Time{}
	}

	return bus, nil
}
