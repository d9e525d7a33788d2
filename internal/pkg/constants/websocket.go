package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"

	// Driver events
	EventDriverLocation = "driver:location"
	EventDriverStop     = "driver:stop-tracking"

	// Passenger subscription events
	EventJoinRoute   = "join-route"
	EventLeaveRoute  = "leave-route"
	EventJoinedRoute = "joined-route"

	// Broadcast events
	EventBusUpdate = "bus:update"
	EventBusStatus = "bus:status"
)

// WebSocket error codes
const (
	ErrorInvalidFormat   = "invalid_format"
	ErrorInvalidLocation = "invalid_location"
	ErrorRouteRequired   = "route_required"
	ErrorUnauthorized    = "unauthorized"
	ErrorInternalError   = "internal_error"
)

// Client-visible error messages that the mobile apps match on verbatim.
const (
	MsgInvalidLocationData = "Invalid location data"
	MsgRouteIDRequired     = "Route ID is required"
)
