package usecase

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piyathilaka/routemate/internal/pkg/constants"
	"github.com/piyathilaka/routemate/internal/pkg/models"
	"github.com/piyathilaka/routemate/services/tracking"
	"github.com/piyathilaka/routemate/services/tracking/mocks"
	"github.com/stretchr/testify/assert"
)

func TestJoinRoute_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockConnectionRegistry(ctrl)
	router := NewRouterUC(mockRegistry)

	client := &models.WebSocketClient{UserID: "user-1"}
	mockRegistry.EXPECT().Join("route-138", client)
	mockRegistry.EXPECT().RoomSize("route-138").Return(1)

	err := router.JoinRoute(client, "route-138")

	assert.NoError(t, err)
}

func TestJoinRoute_EmptyRouteID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := NewRouterUC(mocks.NewMockConnectionRegistry(ctrl))

	err := router.JoinRoute(&models.WebSocketClient{UserID: "user-1"}, "")

	assert.ErrorIs(t, err, tracking.ErrRouteRequired)
}

func TestLeaveRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockConnectionRegistry(ctrl)
	router := NewRouterUC(mockRegistry)

	mockRegistry.EXPECT().Leave("route-138", "user-1")

	router.LeaveRoute(&models.WebSocketClient{UserID: "user-1"}, "route-138")
}

func TestLeaveRoute_EmptyRouteIDIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := NewRouterUC(mocks.NewMockConnectionRegistry(ctrl))

	router.LeaveRoute(&models.WebSocketClient{UserID: "user-1"}, "")
}

func TestHandleLocationEvent_BroadcastsBusUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockConnectionRegistry(ctrl)
	router := NewRouterUC(mockRegistry)

	ts := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	mockRegistry.EXPECT().Broadcast("route-138", constants.EventBusUpdate, models.BusUpdate{
		BusID:     "bus-1",
		Lat:       6.9271,
		Lng:       79.8612,
		Timestamp: "2025-03-14T09:30:00Z",
	})

	router.HandleLocationEvent(&models.BusLocationEvent{
		BusID:     "bus-1",
		RouteID:   "route-138",
		Latitude:  6.9271,
		Longitude: 79.8612,
		Timestamp: ts,
	})
}

func TestHandleStoppedEvent_BroadcastsInactiveStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockConnectionRegistry(ctrl)
	router := NewRouterUC(mockRegistry)

	mockRegistry.EXPECT().Broadcast("route-138", constants.EventBusStatus, models.BusStatusUpdate{
		BusID:    "bus-1",
		IsActive: false,
	})

	router.HandleStoppedEvent(&models.BusStoppedEvent{
		BusID:   "bus-1",
		RouteID: "route-138",
		Stopped: time.Now(),
	})
}
