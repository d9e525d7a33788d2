package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piyathilaka/routemate/internal/pkg/logger"
	"github.com/piyathilaka/routemate/internal/pkg/models"
	"github.com/piyathilaka/routemate/services/boarding"
)

// TicketUC implements the boarding.TicketUseCase interface
type TicketUC struct {
	bookingRepo boarding.BookingRepo
	crewRepo    boarding.CrewRepo
	now         func() time.Time
}

// NewTicketUC creates a new ticket validation use case
func NewTicketUC(bookingRepo boarding.BookingRepo, crewRepo boarding.CrewRepo) *TicketUC {
	return &TicketUC{
		bookingRepo: bookingRepo,
		crewRepo:    crewRepo,
		now:         time.Now,
	}
}

// ValidateTicket resolves the QR payload to a booking and evaluates the
// scan. Lookup failures are verdicts, not errors; scanning a bus the crew
// member is not assigned to is refused before anything is looked up.
func (uc *TicketUC) ValidateTicket(ctx context.Context, crewID uuid.UUID, req *models.ValidateTicketRequest) (*models.TicketValidation, error) {
	if err := uc.authorizeCrew(ctx, crewID, req.BusID, "validate_ticket"); err != nil {
		return nil, err
	}

	qr := strings.TrimSpace(req.QRData)
	if qr == "" {
		return &models.TicketValidation{
			Valid:   false,
			Result:  models.ResultInvalidBooking,
			Message: "Invalid QR code",
		}, nil
	}

	bookingID, err := uuid.Parse(qr)
	if err != nil {
		// QR content that is not a booking id cannot resolve.
		return notFoundVerdict(), nil
	}

	booking, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, boarding.ErrBookingNotFound) {
			return notFoundVerdict(), nil
		}
		return nil, err
	}

	verdict := EvaluateTicket(booking, req.BusID, uc.now())
	logger.Info("Ticket scan evaluated",
		logger.String("booking_id", bookingID.String()),
		logger.String("scan_bus_id", req.BusID),
		logger.String("result", string(verdict.Result)))
	return &verdict, nil
}

// MarkTicketUsed completes the boarding after a VALID scan. The crew member
// must hold an active assignment on the booking's bus; the repo write is
// conditional on status=BOOKED, so a concurrent second scan or manual
// transition surfaces as ErrConflict instead of double-completing.
func (uc *TicketUC) MarkTicketUsed(ctx context.Context, crewID uuid.UUID, bookingID uuid.UUID) error {
	booking, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	if err := uc.authorizeCrew(ctx, crewID, booking.BusID, "mark_ticket_used"); err != nil {
		return err
	}

	return uc.bookingRepo.MarkTicketUsed(ctx, bookingID)
}

// authorizeCrew refuses the operation unless the crew member has an active
// assignment on the bus. Refusals happen before any lookup or write.
func (uc *TicketUC) authorizeCrew(ctx context.Context, crewID uuid.UUID, busID, operation string) error {
	assigned, err := uc.crewRepo.HasActiveAssignment(ctx, crewID, busID)
	if err != nil {
		return err
	}
	if !assigned {
		logger.Warn("Unauthorized ticket operation",
			logger.String("crew_id", crewID.String()),
			logger.String("bus_id", busID),
			logger.String("operation", operation))
		return boarding.ErrNotAuthorized
	}
	return nil
}

// EvaluateTicket is the pure scan decision. The precedence order is part
// of the contract: an expired ticket for the wrong bus reports EXPIRED.
func EvaluateTicket(booking *models.Booking, scanBusID string, today time.Time) models.TicketValidation {
	if !sameDay(booking.TripDate, today) {
		return verdict(false, models.ResultExpired, "Ticket is not valid for today")
	}
	if booking.BusID != scanBusID {
		return verdict(false, models.ResultWrongBus, "Ticket is for a different bus")
	}

	switch booking.Status {
	case models.BookingStatusCancelled:
		return verdict(false, models.ResultCancelled, "Booking has been cancelled")
	case models.BookingStatusCompleted:
		return verdict(false, models.ResultAlreadyUsed, "Ticket has already been used")
	case models.BookingStatusBooked:
		return verdict(true, models.ResultValid, "Valid ticket - Allow boarding")
	default:
		return verdict(false, models.ResultInvalidBooking, "Booking is not in a valid state")
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func verdict(valid bool, result models.ValidationResult, message string) models.TicketValidation {
	return models.TicketValidation{
		Valid:   valid,
		Result:  result,
		Message: message,
	}
}

func notFoundVerdict() *models.TicketValidation {
	return &models.TicketValidation{
		Valid:   false,
		Result:  models.ResultNotFound,
		Message: "Booking not found",
	}
}
