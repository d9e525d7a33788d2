package constants

// Redis key formats
const (
	// Tracking service
	KeyBusLocation = "bus:location:%s" // Format: bus:location:{bus_id}
	KeyRouteGeo    = "route:geo:%s"    // Format: route:geo:{route_id}, geo set of bus positions
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldTimestamp = "ts"
	FieldActive    = "active"
	FieldRouteID   = "route_id"
	FieldGeohash   = "geohash"
)

// GeohashPrecision sizes the cell stored with each live position. Precision
// 5 cells are ~4.9km per side, so a cell plus its neighbors always covers
// the proximity radii the nearby lookup serves.
const GeohashPrecision = 5
