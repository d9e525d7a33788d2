package nats

import (
	"encoding/json"

	"github.com/nats-io/nats.go"
	"github.com/piyathilaka/routemate/internal/pkg/constants"
	"github.com/piyathilaka/routemate/internal/pkg/logger"
	"github.com/piyathilaka/routemate/internal/pkg/models"
	natspkg "github.com/piyathilaka/routemate/internal/pkg/nats"
	"github.com/piyathilaka/routemate/services/tracking"
)

// NatsHandler consumes tracking events and feeds the broadcast router.
type NatsHandler struct {
	router tracking.BroadcastRouter
	client *natspkg.Client
	subs   []*nats.Subscription
}

// NewNatsHandler creates a new NATS handler for the tracking service
func NewNatsHandler(router tracking.BroadcastRouter, client *natspkg.Client) *NatsHandler {
	return &NatsHandler{
		router: router,
		client: client,
	}
}

// InitConsumers subscribes to the tracking subjects
func (h *NatsHandler) InitConsumers() error {
	sub, err := h.client.Subscribe(constants.SubjectLocationUpdate, h.handleLocationUpdate)
	if err != nil {
		return err
	}
	h.subs = append(h.subs, sub)

	sub, err = h.client.Subscribe(constants.SubjectLocationStopped, h.handleBusStopped)
	if err != nil {
		return err
	}
	h.subs = append(h.subs, sub)

	return nil
}

func (h *NatsHandler) handleLocationUpdate(msg *nats.Msg) {
	var event models.BusLocationEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("Failed to unmarshal location update event",
			logger.Err(err))
		return
	}

	h.router.HandleLocationEvent(&event)
}

func (h *NatsHandler) handleBusStopped(msg *nats.Msg) {
	var event models.BusStoppedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("Failed to unmarshal bus stopped event",
			logger.Err(err))
		return
	}

	h.router.HandleStoppedEvent(&event)
}

// Close drains the subscriptions
func (h *NatsHandler) Close() {
	for _, sub := range h.subs {
		_ = sub.Unsubscribe()
	}
}
