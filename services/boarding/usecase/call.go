package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piyathilaka/routemate/internal/pkg/logger"
	"github.com/piyathilaka/routemate/internal/pkg/models"
	"github.com/piyathilaka/routemate/services/boarding"
)

// CallUC implements the boarding.CallUseCase interface: the masked call
// bridge between crew and passenger.
type CallUC struct {
	bookingRepo boarding.BookingRepo
	crewRepo    boarding.CrewRepo
	profileRepo boarding.ProfileRepo
	callLogRepo boarding.CallLogRepo
	telephony   boarding.TelephonyGW
	cfg         *models.Config
}

// NewCallUC creates a new masked call use case
func NewCallUC(
	bookingRepo boarding.BookingRepo,
	crewRepo boarding.CrewRepo,
	profileRepo boarding.ProfileRepo,
	callLogRepo boarding.CallLogRepo,
	telephony boarding.TelephonyGW,
	cfg *models.Config,
) *CallUC {
	return &CallUC{
		bookingRepo: bookingRepo,
		crewRepo:    crewRepo,
		profileRepo: profileRepo,
		callLogRepo: callLogRepo,
		telephony:   telephony,
		cfg:         cfg,
	}
}

// InitiateCall places a two-leg call: the provider dials the crew first,
// then bridges the passenger, with the platform caller ID on both legs.
// Authorization failures perform no side effects at all; provider failures
// are logged once and never retried.
func (uc *CallUC) InitiateCall(ctx context.Context, crewID uuid.UUID, bookingID uuid.UUID) (*models.CallResult, error) {
	booking, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	assigned, err := uc.crewRepo.HasActiveAssignment(ctx, crewID, booking.BusID)
	if err != nil {
		return nil, err
	}
	if !assigned {
		logger.Warn("Unauthorized call attempt",
			logger.String("crew_id", crewID.String()),
			logger.String("booking_id", bookingID.String()),
			logger.String("bus_id", booking.BusID))
		return nil, boarding.ErrNotAuthorized
	}

	crewProfile, err := uc.profileRepo.GetProfile(ctx, crewID)
	if err != nil {
		return nil, err
	}
	passengerProfile, err := uc.profileRepo.GetProfile(ctx, booking.PassengerID)
	if err != nil {
		return nil, err
	}
	if crewProfile.PhoneNumber == "" || passengerProfile.PhoneNumber == "" {
		return nil, boarding.ErrMissingPhone
	}

	resp, err := uc.telephony.BridgeCall(ctx, &models.BridgeCallRequest{
		CrewPhone:      crewProfile.PhoneNumber,
		PassengerPhone: passengerProfile.PhoneNumber,
		CallerID:       uc.cfg.Telephony.CallerID,
	})
	if err != nil {
		uc.appendLog(ctx, bookingID, crewID, "", "FAILED")
		return nil, err
	}

	uc.appendLog(ctx, bookingID, crewID, resp.CallSID, resp.Status)

	return &models.CallResult{
		Success: true,
		Message: "Call initiated",
		CallSID: resp.CallSID,
	}, nil
}

func (uc *CallUC) appendLog(ctx context.Context, bookingID, crewID uuid.UUID, callSID, status string) {
	entry := &models.CallLog{
		ID:        uuid.New(),
		BookingID: bookingID,
		CrewID:    crewID,
		CallSID:   callSID,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.callLogRepo.Append(ctx, entry); err != nil {
		// The call already happened; an unrecorded attempt is log-worthy
		// but must not fail the request.
		logger.Error("Failed to append call log",
			logger.String("booking_id", bookingID.String()),
			logger.Err(err))
	}
}
