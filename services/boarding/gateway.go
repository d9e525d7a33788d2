package boarding

import (
	"context"

	"github.com/piyathilaka/routemate/internal/pkg/models"
)

// TelephonyGW drives the external call provider. One attempt per request,
// bounded timeout, never retried — a duplicate attempt is a billed call.
type TelephonyGW interface {
	BridgeCall(ctx context.Context, req *models.BridgeCallRequest) (*models.BridgeCallResponse, error)
}
