package websocket

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/piyathilaka/routemate/internal/pkg/constants"
	"github.com/piyathilaka/routemate/internal/pkg/models"
	"github.com/piyathilaka/routemate/services/tracking"
)

// handleJoinRoute subscribes the connection to a route channel and
// acknowledges with joined-route.
func (m *WebSocketManager) handleJoinRoute(client *models.WebSocketClient, data json.RawMessage) error {
	var req models.RouteRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return m.manager.SendErrorMessage(client, constants.ErrorRouteRequired, constants.MsgRouteIDRequired)
	}

	if err := m.router.JoinRoute(client, req.RouteID); err != nil {
		if errors.Is(err, tracking.ErrRouteRequired) {
			return m.manager.SendErrorMessage(client, constants.ErrorRouteRequired, constants.MsgRouteIDRequired)
		}
		return m.manager.SendErrorMessage(client, constants.ErrorInternalError, "Failed to join route")
	}

	return m.manager.SendMessage(client, constants.EventJoinedRoute, models.JoinedRouteAck{
		RouteID: req.RouteID,
		Message: fmt.Sprintf("Joined route %s", req.RouteID),
	})
}

// handleLeaveRoute drops the membership. No reply either way.
func (m *WebSocketManager) handleLeaveRoute(client *models.WebSocketClient, data json.RawMessage) error {
	var req models.RouteRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil
	}

	m.router.LeaveRoute(client, req.RouteID)
	return nil
}
