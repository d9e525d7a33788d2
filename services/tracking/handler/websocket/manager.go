package websocket

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piyathilaka/routemate/internal/pkg/constants"
	"github.com/piyathilaka/routemate/internal/pkg/logger"
	"github.com/piyathilaka/routemate/internal/pkg/models"
	pkgws "github.com/piyathilaka/routemate/internal/pkg/websocket"
	"github.com/piyathilaka/routemate/services/tracking"
)

// WebSocketManager wires the tracking use cases to the live transport.
type WebSocketManager struct {
	locationUC tracking.LocationUseCase
	router     tracking.BroadcastRouter
	manager    *pkgws.Manager
}

// NewWebSocketManager creates a new WebSocket manager for the tracking service
func NewWebSocketManager(
	locationUC tracking.LocationUseCase,
	router tracking.BroadcastRouter,
	manager *pkgws.Manager,
) *WebSocketManager {
	return &WebSocketManager{
		locationUC: locationUC,
		router:     router,
		manager:    manager,
	}
}

// HandleWebSocket handles new WebSocket connections
func (m *WebSocketManager) HandleWebSocket(c echo.Context) error {
	return m.manager.HandleConnection(c, m.handleClientConnection)
}

// handleClientConnection manages the client's WebSocket connection
func (m *WebSocketManager) handleClientConnection(client *models.WebSocketClient, ws *websocket.Conn) error {
	client.Conn = ws
	m.manager.AddClient(client)
	// RemoveClient also leaves every joined route, so a disconnect
	// immediately stops broadcasts to this connection.
	defer m.manager.RemoveClient(client.UserID)

	return m.messageLoop(client)
}

// messageLoop handles incoming WebSocket messages
func (m *WebSocketManager) messageLoop(client *models.WebSocketClient) error {
	for {
		_, msg, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("WebSocket read error",
					logger.String("user_id", client.UserID),
					logger.Err(err))
			}
			return err
		}

		if err := m.handleMessage(client, msg); err != nil {
			logger.Warn("Error handling message",
				logger.String("user_id", client.UserID),
				logger.Err(err))
		}
	}
}

// handleMessage processes incoming WebSocket messages
func (m *WebSocketManager) handleMessage(client *models.WebSocketClient, msg []byte) error {
	var wsMsg models.WSMessage
	if err := json.Unmarshal(msg, &wsMsg); err != nil {
		return m.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Invalid message format")
	}

	switch wsMsg.Event {
	case constants.EventDriverLocation:
		return m.handleLocationPing(client, wsMsg.Data)
	case constants.EventDriverStop:
		return m.handleStopTracking(client, wsMsg.Data)
	case constants.EventJoinRoute:
		return m.handleJoinRoute(client, wsMsg.Data)
	case constants.EventLeaveRoute:
		return m.handleLeaveRoute(client, wsMsg.Data)
	default:
		return m.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Unknown event type")
	}
}
