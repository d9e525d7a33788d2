package models

import (
	"time"

	"github.com/google/uuid"
)

// CallLog is an append-only audit record of a masked call attempt.
type CallLog struct {
	ID        uuid.UUID `json:"id" db:"id"`
	BookingID uuid.UUID `json:"booking_id" db:"booking_id"`
	CrewID    uuid.UUID `json:"crew_id" db:"crew_id"`
	CallSID   string    `json:"call_sid" db:"call_sid"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CallResult is the only thing the caller ever sees: no phone numbers,
// no provider detail beyond the call identifier.
type CallResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	CallSID string `json:"call_sid,omitempty"`
}

// BridgeCallRequest is what the telephony gateway needs to place the two
// call legs. It stays inside the service boundary.
type BridgeCallRequest struct {
	CrewPhone      string
	PassengerPhone string
	CallerID       string
}

// BridgeCallResponse is the provider's answer for the first leg.
type BridgeCallResponse struct {
	CallSID string `json:"call_sid"`
	Status  string `json:"status"`
}
