package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piyathilaka/routemate/internal/pkg/models"
	"github.com/piyathilaka/routemate/services/boarding"
	"github.com/piyathilaka/routemate/services/boarding/mocks"
	"github.com/stretchr/testify/assert"
)

type callFixture struct {
	bookingRepo *mocks.MockBookingRepo
	crewRepo    *mocks.MockCrewRepo
	profileRepo *mocks.MockProfileRepo
	callLogRepo *mocks.MockCallLogRepo
	telephony   *mocks.MockTelephonyGW
	uc          *CallUC
}

func newCallFixture(ctrl *gomock.Controller) *callFixture {
	f := &callFixture{
		bookingRepo: mocks.NewMockBookingRepo(ctrl),
		crewRepo:    mocks.NewMockCrewRepo(ctrl),
		profileRepo: mocks.NewMockProfileRepo(ctrl),
		callLogRepo: mocks.NewMockCallLogRepo(ctrl),
		telephony:   mocks.NewMockTelephonyGW(ctrl),
	}
	cfg := &models.Config{
		Telephony: models.TelephonyConfig{CallerID: "+94112000000"},
	}
	f.uc = NewCallUC(f.bookingRepo, f.crewRepo, f.profileRepo, f.callLogRepo, f.telephony, cfg)
	return f
}

func TestInitiateCall_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCallFixture(ctrl)
	crewID := uuid.New()
	booking := bookingForScan("bus-1", models.BookingStatusBooked, scanDay)

	f.bookingRepo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)
	f.crewRepo.EXPECT().HasActiveAssignment(gomock.Any(), crewID, "bus-1").Return(true, nil)
	f.profileRepo.EXPECT().GetProfile(gomock.Any(), crewID).Return(&models.Profile{
		ID: crewID, PhoneNumber: "+94770000001",
	}, nil)
	f.profileRepo.EXPECT().GetProfile(gomock.Any(), booking.PassengerID).Return(&models.Profile{
		ID: booking.PassengerID, PhoneNumber: "+94770000002",
	}, nil)
	f.telephony.EXPECT().BridgeCall(gomock.Any(), &models.BridgeCallRequest{
		CrewPhone:      "+94770000001",
		PassengerPhone: "+94770000002",
		CallerID:       "+94112000000",
	}).Return(&models.BridgeCallResponse{CallSID: "CA123", Status: "INITIATED"}, nil)
	f.callLogRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, log *models.CallLog) error {
			assert.Equal(t, booking.ID, log.BookingID)
			assert.Equal(t, crewID, log.CrewID)
			assert.Equal(t, "CA123", log.CallSID)
			assert.Equal(t, "INITIATED", log.Status)
			return nil
		})

	result, err := f.uc.InitiateCall(context.Background(), crewID, booking.ID)

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "CA123", result.CallSID)
	assert.NotContains(t, result.Message, "+94")
}

func TestInitiateCall_UnauthorizedHasNoSideEffects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCallFixture(ctrl)
	crewID := uuid.New()
	booking := bookingForScan("bus-1", models.BookingStatusBooked, scanDay)

	f.bookingRepo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)
	f.crewRepo.EXPECT().HasActiveAssignment(gomock.Any(), crewID, "bus-1").Return(false, nil)
	// No profile lookups, no bridge attempt, no call log.

	result, err := f.uc.InitiateCall(context.Background(), crewID, booking.ID)

	assert.ErrorIs(t, err, boarding.ErrNotAuthorized)
	assert.Nil(t, result)
}

func TestInitiateCall_BookingNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCallFixture(ctrl)
	crewID := uuid.New()
	bookingID := uuid.New()

	f.bookingRepo.EXPECT().GetBooking(gomock.Any(), bookingID).Return(nil, boarding.ErrBookingNotFound)

	result, err := f.uc.InitiateCall(context.Background(), crewID, bookingID)

	assert.ErrorIs(t, err, boarding.ErrBookingNotFound)
	assert.Nil(t, result)
}

func TestInitiateCall_MissingPassengerPhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCallFixture(ctrl)
	crewID := uuid.New()
	booking := bookingForScan("bus-1", models.BookingStatusBooked, scanDay)

	f.bookingRepo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)
	f.crewRepo.EXPECT().HasActiveAssignment(gomock.Any(), crewID, "bus-1").Return(true, nil)
	f.profileRepo.EXPECT().GetProfile(gomock.Any(), crewID).Return(&models.Profile{
		ID: crewID, PhoneNumber: "+94770000001",
	}, nil)
	f.profileRepo.EXPECT().GetProfile(gomock.Any(), booking.PassengerID).Return(&models.Profile{
		ID: booking.PassengerID, PhoneNumber: "",
	}, nil)

	result, err := f.uc.InitiateCall(context.Background(), crewID, booking.ID)

	assert.ErrorIs(t, err, boarding.ErrMissingPhone)
	assert.Nil(t, result)
}

func TestInitiateCall_ProviderFailureIsLoggedOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCallFixture(ctrl)
	crewID := uuid.New()
	booking := bookingForScan("bus-1", models.BookingStatusBooked, scanDay)

	f.bookingRepo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)
	f.crewRepo.EXPECT().HasActiveAssignment(gomock.Any(), crewID, "bus-1").Return(true, nil)
	f.profileRepo.EXPECT().GetProfile(gomock.Any(), crewID).Return(&models.Profile{
		ID: crewID, PhoneNumber: "+94770000001",
	}, nil)
	f.profileRepo.EXPECT().GetProfile(gomock.Any(), booking.PassengerID).Return(&models.Profile{
		ID: booking.PassengerID, PhoneNumber: "+94770000002",
	}, nil)
	// A single bridge attempt, no retry.
	f.telephony.EXPECT().BridgeCall(gomock.Any(), gomock.Any()).
		Return(nil, boarding.ErrTelephonyFailure).Times(1)
	f.callLogRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, log *models.CallLog) error {
			assert.Equal(t, "FAILED", log.Status)
			assert.Empty(t, log.CallSID)
			return nil
		})

	result, err := f.uc.InitiateCall(context.Background(), crewID, booking.ID)

	assert.ErrorIs(t, err, boarding.ErrTelephonyFailure)
	assert.Nil(t, result)
}

func TestInitiateCall_CallLogFailureDoesNotFailTheCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCallFixture(ctrl)
	crewID := uuid.New()
	booking := bookingForScan("bus-1", models.BookingStatusBooked, scanDay)

	f.bookingRepo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)
	f.crewRepo.EXPECT().HasActiveAssignment(gomock.Any(), crewID, "bus-1").Return(true, nil)
	f.profileRepo.EXPECT().GetProfile(gomock.Any(), crewID).Return(&models.Profile{
		ID: crewID, PhoneNumber: "+94770000001",
	}, nil)
	f.profileRepo.EXPECT().GetProfile(gomock.Any(), booking.PassengerID).Return(&models.Profile{
		ID: booking.PassengerID, PhoneNumber: "+94770000002",
	}, nil)
	f.telephony.EXPECT().BridgeCall(gomock.Any(), gomock.Any()).
		Return(&models.BridgeCallResponse{CallSID: "CA456", Status: "INITIATED"}, nil)
	f.callLogRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

	result, err := f.uc.InitiateCall(context.Background(), crewID, booking.ID)

	assert.NoError(t, err)
	assert.True(t, result.Success)
}
