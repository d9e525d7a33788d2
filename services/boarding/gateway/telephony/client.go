package telephony

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	pkghttp "github.com/piyathilaka/routemate/internal/pkg/http"
	"github.com/piyathilaka/routemate/internal/pkg/logger"
	"github.com/piyathilaka/routemate/internal/pkg/models"
	"github.com/piyathilaka/routemate/services/boarding"
)

const (
	// DefaultTimeout bounds a bridge attempt when no timeout is configured
	DefaultTimeout = 15 * time.Second
	// APIKeyHeader is the header name for the provider API key
	APIKeyHeader = "X-API-Key"

	bridgeEndpoint = "/v1/calls/bridge"
)

// Client drives the masked-call provider over HTTP. One request per bridge
// attempt, no retries: a duplicate request is a second billed call.
type Client struct {
	http   *pkghttp.Client
	apiKey string
}

// NewClient creates a telephony provider client from configuration.
func NewClient(cfg *models.TelephonyConfig) *Client {
	timeout := DefaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	return &Client{
		http:   pkghttp.NewClient(cfg.BaseURL, timeout),
		apiKey: cfg.APIKey,
	}
}

type bridgeRequest struct {
	From     string `json:"from"`
	To       string `json:"to"`
	CallerID string `json:"caller_id"`
}

// BridgeCall asks the provider to dial the crew leg and bridge the
// passenger leg. Phone numbers go only into the request body; they are
// never logged and never appear in the returned response.
func (c *Client) BridgeCall(ctx context.Context, req *models.BridgeCallRequest) (*models.BridgeCallResponse, error) {
	body, err := json.Marshal(bridgeRequest{
		From:     req.CrewPhone,
		To:       req.PassengerPhone,
		CallerID: req.CallerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal bridge request: %w", err)
	}

	httpReq, err := c.http.NewJSONRequest(ctx, http.MethodPost, bridgeEndpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create bridge request: %w", err)
	}
	if c.apiKey != "" {
		httpReq.Header.Set(APIKeyHeader, c.apiKey)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		logger.Error("Telephony request failed", logger.Err(err))
		return nil, fmt.Errorf("%w: %v", boarding.ErrTelephonyFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		logger.Error("Telephony provider rejected bridge",
			logger.Int("status_code", resp.StatusCode))
		return nil, fmt.Errorf("%w: status %d", boarding.ErrTelephonyFailure, resp.StatusCode)
	}

	var bridged models.BridgeCallResponse
	if err := json.NewDecoder(resp.Body).Decode(&bridged); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", boarding.ErrTelephonyFailure, err)
	}

	logger.Info("Bridge call placed",
		logger.String("call_sid", bridged.CallSID),
		logger.String("status", bridged.Status))

	return &bridged, nil
}
