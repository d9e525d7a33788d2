package models

import "time"

// Location represents a geographic point at a moment in time
type Location struct {
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

// LocationSample is one immutable position report for a bus.
// Samples are append-only; retention is handled outside the core.
type LocationSample struct {
	BusID     string    `json:"bus_id" db:"bus_id"`
	RouteID   string    `json:"route_id" db:"route_id"`
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Timestamp time.Time `json:"timestamp" db:"recorded_at"`
}

// BusLocationEvent is the event published on every accepted ping,
// consumed by the broadcast side to fan out bus:update messages.
type BusLocationEvent struct {
	BusID     string    `json:"bus_id"`
	RouteID   string    `json:"route_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

// BusStoppedEvent is published when a driver explicitly stops tracking.
type BusStoppedEvent struct {
	BusID   string    `json:"bus_id"`
	RouteID string    `json:"route_id"`
	Stopped time.Time `json:"stopped"`
}
