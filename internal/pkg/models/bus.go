package models

import (
	"time"
)

// Bus represents a registered bus. Registration itself is handled by the
// fleet CRUD collaborator; the core only mutates the tracking fields.
type Bus struct {
	ID          string    `json:"id" db:"id"`
	RouteID     string    `json:"route_id" db:"route_id"`
	DriverID    string    `json:"driver_id" db:"driver_id"`
	PlateNumber string    `json:"plate_number" db:"plate_number"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	LastLat     float64   `json:"last_lat" db:"last_lat"`
	LastLng     float64   `json:"last_lng" db:"last_lng"`
	LastSeen    time.Time `json:"last_seen" db:"last_seen"`
}

// ActiveWithin reports whether the bus should be presented as active:
// the flag must be set and the most recent ping must be inside the
// inactivity window. An explicit stop clears the flag regardless of timing.
func (b *Bus) ActiveWithin(window time.Duration, now time.Time) bool {
	if !b.IsActive {
		return false
	}
	return now.Sub(b.LastSeen) <= window
}
