package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/piyathilaka/routemate/internal/pkg/logger"
	"github.com/piyathilaka/routemate/internal/pkg/models"
	"github.com/piyathilaka/routemate/internal/utils"
	"github.com/piyathilaka/routemate/services/boarding"
)

// PickupUC implements the boarding.PickupUseCase interface
type PickupUC struct {
	bookingRepo boarding.BookingRepo
	profileRepo boarding.ProfileRepo
}

// NewPickupUC creates a new pickup workflow use case
func NewPickupUC(bookingRepo boarding.BookingRepo, profileRepo boarding.ProfileRepo) *PickupUC {
	return &PickupUC{
		bookingRepo: bookingRepo,
		profileRepo: profileRepo,
	}
}

// ConfirmPickup records that the passenger was reached and confirmed.
func (uc *PickupUC) ConfirmPickup(ctx context.Context, bookingID uuid.UUID) error {
	return uc.transition(ctx, bookingID, "confirm_pickup", func(ctx context.Context) error {
		return uc.bookingRepo.SetPickupStatus(ctx, bookingID, models.PickupStatusConfirmed)
	})
}

// MarkNoAnswer records an unanswered contact attempt.
func (uc *PickupUC) MarkNoAnswer(ctx context.Context, bookingID uuid.UUID) error {
	return uc.transition(ctx, bookingID, "mark_no_answer", func(ctx context.Context) error {
		return uc.bookingRepo.SetPickupStatus(ctx, bookingID, models.PickupStatusNoAnswer)
	})
}

// CancelPickup frees the seat: pickup_status and status move to CANCELLED
// in one update so the seat-freed invariant cannot be half-applied.
func (uc *PickupUC) CancelPickup(ctx context.Context, bookingID uuid.UUID) error {
	return uc.transition(ctx, bookingID, "cancel_pickup", func(ctx context.Context) error {
		return uc.bookingRepo.SetPickupAndBookingStatus(ctx, bookingID,
			models.PickupStatusCancelled, models.BookingStatusCancelled)
	})
}

// MarkPickedUp confirms boarding without a QR scan (manual override).
func (uc *PickupUC) MarkPickedUp(ctx context.Context, bookingID uuid.UUID) error {
	return uc.transition(ctx, bookingID, "mark_picked_up", func(ctx context.Context) error {
		return uc.bookingRepo.SetPickupAndBookingStatus(ctx, bookingID,
			models.PickupStatusConfirmed, models.BookingStatusCompleted)
	})
}

// MarkNoShow records that the passenger never appeared.
func (uc *PickupUC) MarkNoShow(ctx context.Context, bookingID uuid.UUID) error {
	return uc.transition(ctx, bookingID, "mark_no_show", func(ctx context.Context) error {
		return uc.bookingRepo.SetPickupAndBookingStatus(ctx, bookingID,
			models.PickupStatusNoAnswer, models.BookingStatusNoShow)
	})
}

// GetBookingDetails returns the booking with the passenger's display name
// and masked phone number.
func (uc *PickupUC) GetBookingDetails(ctx context.Context, bookingID uuid.UUID) (*boarding.BookingDetails, error) {
	booking, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	details := &boarding.BookingDetails{
		Booking:        booking,
		PassengerPhone: utils.GetMaskedPhone(""),
	}

	// A missing profile degrades to masked-empty contact details; an
	// infrastructure failure must not masquerade as one.
	profile, err := uc.profileRepo.GetProfile(ctx, booking.PassengerID)
	if err != nil {
		if errors.Is(err, boarding.ErrProfileNotFound) {
			return details, nil
		}
		return nil, err
	}

	details.PassengerName = profile.FullName
	details.PassengerPhone = utils.GetMaskedPhone(profile.PhoneNumber)

	return details, nil
}

func (uc *PickupUC) transition(ctx context.Context, bookingID uuid.UUID, name string, apply func(context.Context) error) error {
	if err := apply(ctx); err != nil {
		return err
	}

	logger.Info("Pickup transition applied",
		logger.String("booking_id", bookingID.String()),
		logger.String("transition", name))
	return nil
}
