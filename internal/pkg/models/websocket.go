package models

import (
	"encoding/json"
	"sync"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
)

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WebSocketClient tracks one authenticated live connection and the route
// channels it has joined.
type WebSocketClient struct {
	UserID string
	Role   string
	Conn   *websocket.Conn

	writeMu sync.Mutex
}

// WriteJSON serializes writes to the connection. gorilla/websocket allows
// only one writer at a time, and both the broadcast fan-out and the
// connection's own read loop send through here.
func (c *WebSocketClient) WriteJSON(v interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteJSON(v)
}

// WebSocketClaims are the JWT claims carried on a live connection.
type WebSocketClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// LocationPing is the driver's position report. Lat/Lng are pointers so a
// missing field is distinguishable from a legitimate zero coordinate.
type LocationPing struct {
	BusID   string   `json:"busId"`
	RouteID string   `json:"routeId"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
}

// StopTrackingRequest marks a bus inactive.
type StopTrackingRequest struct {
	BusID string `json:"busId"`
}

// RouteRequest carries the route a connection wants to join or leave.
type RouteRequest struct {
	RouteID string `json:"routeId"`
}

// JoinedRouteAck acknowledges a successful join.
type JoinedRouteAck struct {
	RouteID string `json:"routeId"`
	Message string `json:"message"`
}

// BusUpdate is the position broadcast to every subscriber of a route.
// Timestamp is an ISO 8601 string on the wire.
type BusUpdate struct {
	BusID     string  `json:"busId"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Timestamp string  `json:"timestamp"`
}

// BusStatusUpdate notifies subscribers of an active/inactive transition.
type BusStatusUpdate struct {
	BusID    string `json:"busId"`
	IsActive bool   `json:"isActive"`
}
