package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/piyathilaka/routemate/internal/pkg/constants"
	natspkg "github.com/piyathilaka/routemate/internal/pkg/nats"
	"github.com/piyathilaka/routemate/internal/pkg/models"
)

// Gateway publishes tracking events over NATS so the broadcast side can
// run on any instance behind the load balancer.
type Gateway struct {
	client *natspkg.Client
}

// NewGateway creates a new NATS tracking gateway
func NewGateway(client *natspkg.Client) *Gateway {
	return &Gateway{client: client}
}

// PublishLocationUpdate publishes an accepted ping on location.update
func (g *Gateway) PublishLocationUpdate(ctx context.Context, event *models.BusLocationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal location event: %w", err)
	}

	return g.client.Publish(constants.SubjectLocationUpdate, data)
}

// PublishBusStopped publishes an explicit stop on location.stopped
func (g *Gateway) PublishBusStopped(ctx context.Context, event *models.BusStoppedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal stopped event: %w", err)
	}

	return g.client.Publish(constants.SubjectLocationStopped, data)
}
