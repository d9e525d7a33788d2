package boarding

import (
	"context"

	"github.com/google/uuid"
	"github.com/piyathilaka/routemate/internal/pkg/models"
)

// BookingRepo is the BookingStore. Every write is a conditional update so
// concurrent scans and manual transitions cannot race into an inconsistent
// status/pickup_status pair.
type BookingRepo interface {
	GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error)

	// MarkTicketUsed sets status=COMPLETED and pickup_status=CONFIRMED in
	// one statement, conditional on status=BOOKED. Returns ErrConflict
	// when the booking is no longer BOOKED.
	MarkTicketUsed(ctx context.Context, id uuid.UUID) error

	// SetPickupStatus updates pickup_status alone.
	SetPickupStatus(ctx context.Context, id uuid.UUID, pickup models.PickupStatus) error

	// SetPickupAndBookingStatus updates both fields in one statement, for
	// the transitions that must pair them.
	SetPickupAndBookingStatus(ctx context.Context, id uuid.UUID, pickup models.PickupStatus, status models.BookingStatus) error
}

// CrewRepo resolves crew assignments for authorization.
type CrewRepo interface {
	// HasActiveAssignment reports whether the crew member currently works
	// the given bus.
	HasActiveAssignment(ctx context.Context, crewID uuid.UUID, busID string) (bool, error)
}

// ProfileRepo resolves contact details for the call bridge.
type ProfileRepo interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
}

// CallLogRepo is the append-only audit trail of masked call attempts.
type CallLogRepo interface {
	Append(ctx context.Context, log *models.CallLog) error
}
