package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piyathilaka/routemate/internal/pkg/constants"
	"github.com/piyathilaka/routemate/internal/pkg/logger"
	"github.com/piyathilaka/routemate/internal/pkg/models"
)

// Manager tracks live WebSocket connections and the route rooms each one
// has joined. It is the concrete ConnectionRegistry used by the broadcast
// router; membership operations are synchronous and lock-guarded.
type Manager struct {
	sync.RWMutex
	clients  map[string]*models.WebSocketClient
	rooms    map[string]map[string]*models.WebSocketClient
	joined   map[string]map[string]struct{}
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		clients: make(map[string]*models.WebSocketClient),
		rooms:   make(map[string]map[string]*models.WebSocketClient),
		joined:  make(map[string]map[string]struct{}),
		cfg:     jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and handles a new WebSocket connection
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*models.WebSocketClient, *websocket.Conn) error) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	return handleClient(client, ws)
}

// authenticateClient authenticates the WebSocket client using JWT
func (m *Manager) authenticateClient(c echo.Context) (*models.WebSocketClient, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
	}

	claims, err := m.validateToken(parts[1])
	if err != nil {
		logger.Warn("Token validation failed",
			logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return &models.WebSocketClient{
		UserID: claims.UserID,
		Role:   claims.Role,
	}, nil
}

// validateToken validates the JWT token and returns the claims
func (m *Manager) validateToken(tokenString string) (*models.WebSocketClaims, error) {
	claims := &models.WebSocketClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.cfg.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// AddClient safely adds a client to the manager
func (m *Manager) AddClient(client *models.WebSocketClient) {
	m.Lock()
	defer m.Unlock()
	m.clients[client.UserID] = client
}

// RemoveClient removes a client and drops it from every room it joined,
// so a disconnect immediately stops future broadcasts to the connection.
func (m *Manager) RemoveClient(userID string) {
	m.Lock()
	defer m.Unlock()
	for routeID := range m.joined[userID] {
		delete(m.rooms[routeID], userID)
		if len(m.rooms[routeID]) == 0 {
			delete(m.rooms, routeID)
		}
	}
	delete(m.joined, userID)
	delete(m.clients, userID)
}

// GetClient returns a client by ID
func (m *Manager) GetClient(userID string) (*models.WebSocketClient, bool) {
	m.RLock()
	defer m.RUnlock()
	client, exists := m.clients[userID]
	return client, exists
}

// Join adds the connection to the room for routeID. Joining the same route
// twice is a no-op.
func (m *Manager) Join(routeID string, client *models.WebSocketClient) {
	m.Lock()
	defer m.Unlock()
	if m.rooms[routeID] == nil {
		m.rooms[routeID] = make(map[string]*models.WebSocketClient)
	}
	m.rooms[routeID][client.UserID] = client

	if m.joined[client.UserID] == nil {
		m.joined[client.UserID] = make(map[string]struct{})
	}
	m.joined[client.UserID][routeID] = struct{}{}
}

// Leave removes the connection from the room for routeID
func (m *Manager) Leave(routeID string, userID string) {
	m.Lock()
	defer m.Unlock()
	delete(m.rooms[routeID], userID)
	if len(m.rooms[routeID]) == 0 {
		delete(m.rooms, routeID)
	}
	delete(m.joined[userID], routeID)
}

// RoomSize returns the number of connections joined to a route
func (m *Manager) RoomSize(routeID string) int {
	m.RLock()
	defer m.RUnlock()
	return len(m.rooms[routeID])
}

// Broadcast delivers an event to every connection joined to routeID
func (m *Manager) Broadcast(routeID string, event string, data interface{}) {
	m.RLock()
	members := make([]*models.WebSocketClient, 0, len(m.rooms[routeID]))
	for _, client := range m.rooms[routeID] {
		members = append(members, client)
	}
	m.RUnlock()

	for _, client := range members {
		if err := m.SendMessage(client, event, data); err != nil {
			logger.Warn("Failed to deliver broadcast",
				logger.String("user_id", client.UserID),
				logger.String("route_id", routeID),
				logger.String("event", event),
				logger.Err(err))
		}
	}
}

// SendMessage sends a message to a WebSocket client. Writes go through the
// client so they are serialized with concurrent broadcasts to the same
// connection.
func (m *Manager) SendMessage(client *models.WebSocketClient, event string, data interface{}) error {
	if client == nil || client.Conn == nil {
		return nil // Handle nil connection gracefully for tests
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %v", err)
	}

	response := models.WSMessage{
		Event: event,
		Data:  rawData,
	}

	return client.WriteJSON(response)
}

// SendErrorMessage sends an error message to a WebSocket client
func (m *Manager) SendErrorMessage(client *models.WebSocketClient, code string, message string) error {
	return m.SendMessage(client, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}
