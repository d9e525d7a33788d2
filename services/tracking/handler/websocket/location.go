package websocket

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/piyathilaka/routemate/internal/pkg/constants"
	"github.com/piyathilaka/routemate/internal/pkg/logger"
	"github.com/piyathilaka/routemate/internal/pkg/models"
	"github.com/piyathilaka/routemate/services/tracking"
)

// handleLocationPing processes driver:location reports.
func (m *WebSocketManager) handleLocationPing(client *models.WebSocketClient, data json.RawMessage) error {
	var ping models.LocationPing
	if err := json.Unmarshal(data, &ping); err != nil {
		return m.manager.SendErrorMessage(client, constants.ErrorInvalidLocation, constants.MsgInvalidLocationData)
	}

	if err := m.locationUC.IngestPing(context.Background(), client.UserID, &ping); err != nil {
		if errors.Is(err, tracking.ErrInvalidLocation) {
			return m.manager.SendErrorMessage(client, constants.ErrorInvalidLocation, constants.MsgInvalidLocationData)
		}
		if errors.Is(err, tracking.ErrNotBusDriver) {
			return m.manager.SendErrorMessage(client, constants.ErrorUnauthorized, "Not the driver of this bus")
		}

		logger.Error("Error ingesting location ping",
			logger.String("user_id", client.UserID),
			logger.String("bus_id", ping.BusID),
			logger.Err(err))
		return m.manager.SendErrorMessage(client, constants.ErrorInternalError, "Failed to process location")
	}

	return nil
}

// handleStopTracking processes driver:stop-tracking. No reply is required
// on success.
func (m *WebSocketManager) handleStopTracking(client *models.WebSocketClient, data json.RawMessage) error {
	var req models.StopTrackingRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return m.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Invalid stop tracking format")
	}

	if err := m.locationUC.StopTracking(context.Background(), client.UserID, req.BusID); err != nil {
		if errors.Is(err, tracking.ErrNotBusDriver) {
			return m.manager.SendErrorMessage(client, constants.ErrorUnauthorized, "Not the driver of this bus")
		}
		logger.Error("Error stopping tracking",
			logger.String("user_id", client.UserID),
			logger.String("bus_id", req.BusID),
			logger.Err(err))
		return m.manager.SendErrorMessage(client, constants.ErrorInternalError, "Failed to stop tracking")
	}

	return nil
}
