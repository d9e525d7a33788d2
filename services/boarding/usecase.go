package boarding

import (
	"context"

	"github.com/google/uuid"
	"github.com/piyathilaka/routemate/internal/pkg/models"
)

// TicketUseCase is the scan path: a crew device submits the QR payload and
// the bus it is mounted on, and gets a verdict back. Both operations refuse
// crew members without an active assignment on the bus in question.
type TicketUseCase interface {
	// ValidateTicket decides the scan outcome. A negative verdict is not
	// an error; errors are reserved for authorization and infrastructure
	// failures.
	ValidateTicket(ctx context.Context, crewID uuid.UUID, req *models.ValidateTicketRequest) (*models.TicketValidation, error)

	// MarkTicketUsed is the explicit follow-up to a VALID scan: it
	// atomically sets status=COMPLETED and pickup_status=CONFIRMED, and
	// only succeeds from BOOKED.
	MarkTicketUsed(ctx context.Context, crewID uuid.UUID, bookingID uuid.UUID) error
}

// PickupUseCase applies crew-driven pickup transitions. Transitions that
// free the seat always pair pickup_status and status in one update.
type PickupUseCase interface {
	ConfirmPickup(ctx context.Context, bookingID uuid.UUID) error
	MarkNoAnswer(ctx context.Context, bookingID uuid.UUID) error
	CancelPickup(ctx context.Context, bookingID uuid.UUID) error
	MarkPickedUp(ctx context.Context, bookingID uuid.UUID) error
	MarkNoShow(ctx context.Context, bookingID uuid.UUID) error

	// GetBookingDetails returns the booking with passenger name and a
	// masked phone for display. Raw numbers never leave the service.
	GetBookingDetails(ctx context.Context, bookingID uuid.UUID) (*BookingDetails, error)
}

// CallUseCase is the masked call bridge.
type CallUseCase interface {
	// InitiateCall authorizes the crew member against the booking's bus,
	// places a two-leg call through the telephony provider with the
	// platform caller ID on both legs, and records a call log. The result
	// carries only success, a safe message, and the call identifier.
	InitiateCall(ctx context.Context, crewID uuid.UUID, bookingID uuid.UUID) (*models.CallResult, error)
}

// BookingDetails is the crew-facing view of a booking.
type BookingDetails struct {
	Booking        *models.Booking `json:"booking"`
	PassengerName  string          `json:"passenger_name"`
	PassengerPhone string          `json:"passenger_phone"` // masked
}
