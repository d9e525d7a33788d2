package http

import (
	"bytes"
	"context"
	"net/http"
	"time"
)

// Client is the outbound HTTP client for provider and collaborator calls.
// It is bound to one base URL and one timeout; callers own retry policy,
// and for the telephony provider that policy is a single attempt.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client bound to a service base URL
func NewClient(serviceURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		BaseURL: serviceURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewJSONRequest builds a request against the base URL with JSON headers
// already set.
func (c *Client) NewJSONRequest(ctx context.Context, method, path string, body []byte) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// Do executes the request under the client's timeout
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.HTTPClient.Do(req)
}
