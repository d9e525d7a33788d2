package telephony

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/piyathilaka/routemate/internal/pkg/models"
	"github.com/piyathilaka/routemate/services/boarding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bridgeRequestFixture() *models.BridgeCallRequest {
	return &models.BridgeCallRequest{
		CrewPhone:      "+94770000001",
		PassengerPhone: "+94770000002",
		CallerID:       "+94112000000",
	}
}

func TestBridgeCall_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/calls/bridge", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get(APIKeyHeader))

		var body bridgeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "+94770000001", body.From)
		assert.Equal(t, "+94770000002", body.To)
		assert.Equal(t, "+94112000000", body.CallerID)

		json.NewEncoder(w).Encode(models.BridgeCallResponse{CallSID: "CA123", Status: "INITIATED"})
	}))
	defer server.Close()

	client := NewClient(&models.TelephonyConfig{
		BaseURL:        server.URL,
		APIKey:         "secret",
		TimeoutSeconds: 5,
	})

	resp, err := client.BridgeCall(context.Background(), bridgeRequestFixture())

	assert.NoError(t, err)
	assert.Equal(t, "CA123", resp.CallSID)
	assert.Equal(t, "INITIATED", resp.Status)
}

func TestBridgeCall_ProviderErrorIsNotRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(&models.TelephonyConfig{BaseURL: server.URL, TimeoutSeconds: 5})

	resp, err := client.BridgeCall(context.Background(), bridgeRequestFixture())

	assert.ErrorIs(t, err, boarding.ErrTelephonyFailure)
	assert.Nil(t, resp)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestBridgeCall_UnreachableProvider(t *testing.T) {
	client := NewClient(&models.TelephonyConfig{
		BaseURL:        "http://127.0.0.1:1",
		TimeoutSeconds: 1,
	})

	resp, err := client.BridgeCall(context.Background(), bridgeRequestFixture())

	assert.ErrorIs(t, err, boarding.ErrTelephonyFailure)
	assert.Nil(t, resp)
}
