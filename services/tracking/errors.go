package tracking

import "errors"

var (
	// ErrInvalidLocation is returned when a ping is missing fields or
	// carries a non-finite coordinate. Rejected at the boundary, nothing
	// is stored.
	ErrInvalidLocation = errors.New("invalid location data")

	// ErrRouteRequired is returned for a join with no route id.
	ErrRouteRequired = errors.New("route id is required")

	// ErrBusNotFound is returned when a bus id resolves to nothing.
	ErrBusNotFound = errors.New("bus not found")

	// ErrNotBusDriver is returned when a driver pings a bus they do not own.
	ErrNotBusDriver = errors.New("driver is not assigned to this bus")
)
