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

func TestConfirmPickup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookingRepo(ctrl)
	uc := NewPickupUC(mockRepo, mocks.NewMockProfileRepo(ctrl))

	bookingID := uuid.New()
	mockRepo.EXPECT().SetPickupStatus(gomock.Any(), bookingID, models.PickupStatusConfirmed).Return(nil)

	assert.NoError(t, uc.ConfirmPickup(context.Background(), bookingID))
}

func TestMarkNoAnswer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookingRepo(ctrl)
	uc := NewPickupUC(mockRepo, mocks.NewMockProfileRepo(ctrl))

	bookingID := uuid.New()
	mockRepo.EXPECT().SetPickupStatus(gomock.Any(), bookingID, models.PickupStatusNoAnswer).Return(nil)

	assert.NoError(t, uc.MarkNoAnswer(context.Background(), bookingID))
}

func TestCancelPickup_PairsBookingCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookingRepo(ctrl)
	uc := NewPickupUC(mockRepo, mocks.NewMockProfileRepo(ctrl))

	bookingID := uuid.New()
	mockRepo.EXPECT().SetPickupAndBookingStatus(gomock.Any(), bookingID,
		models.PickupStatusCancelled, models.BookingStatusCancelled).Return(nil)

	assert.NoError(t, uc.CancelPickup(context.Background(), bookingID))
}

func TestMarkPickedUp_CompletesBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookingRepo(ctrl)
	uc := NewPickupUC(mockRepo, mocks.NewMockProfileRepo(ctrl))

	bookingID := uuid.New()
	mockRepo.EXPECT().SetPickupAndBookingStatus(gomock.Any(), bookingID,
		models.PickupStatusConfirmed, models.BookingStatusCompleted).Return(nil)

	assert.NoError(t, uc.MarkPickedUp(context.Background(), bookingID))
}

func TestMarkNoShow_ClosesBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookingRepo(ctrl)
	uc := NewPickupUC(mockRepo, mocks.NewMockProfileRepo(ctrl))

	bookingID := uuid.New()
	mockRepo.EXPECT().SetPickupAndBookingStatus(gomock.Any(), bookingID,
		models.PickupStatusNoAnswer, models.BookingStatusNoShow).Return(nil)

	assert.NoError(t, uc.MarkNoShow(context.Background(), bookingID))
}

func TestCancelPickup_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookingRepo(ctrl)
	uc := NewPickupUC(mockRepo, mocks.NewMockProfileRepo(ctrl))

	bookingID := uuid.New()
	mockRepo.EXPECT().SetPickupAndBookingStatus(gomock.Any(), bookingID,
		models.PickupStatusCancelled, models.BookingStatusCancelled).
		Return(boarding.ErrBookingNotFound)

	err := uc.CancelPickup(context.Background(), bookingID)

	assert.ErrorIs(t, err, boarding.ErrBookingNotFound)
}

func TestGetBookingDetails_MasksPhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookingRepo(ctrl)
	mockProfiles := mocks.NewMockProfileRepo(ctrl)
	uc := NewPickupUC(mockRepo, mockProfiles)

	booking := bookingForScan("bus-1", models.BookingStatusBooked, scanDay)
	mockRepo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)
	mockProfiles.EXPECT().GetProfile(gomock.Any(), booking.PassengerID).Return(&models.Profile{
		ID:          booking.PassengerID,
		FullName:    "Nimal Perera",
		PhoneNumber: "+94771234567",
	}, nil)

	details, err := uc.GetBookingDetails(context.Background(), booking.ID)

	assert.NoError(t, err)
	assert.Equal(t, "Nimal Perera", details.PassengerName)
	assert.Equal(t, "+947 *** **67", details.PassengerPhone)
	assert.NotContains(t, details.PassengerPhone, "1234567")
}

func TestGetBookingDetails_ProfileLookupFailureStillReturnsBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookingRepo(ctrl)
	mockProfiles := mocks.NewMockProfileRepo(ctrl)
	uc := NewPickupUC(mockRepo, mockProfiles)

	booking := bookingForScan("bus-1", models.BookingStatusBooked, scanDay)
	mockRepo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)
	mockProfiles.EXPECT().GetProfile(gomock.Any(), booking.PassengerID).
		Return(nil, boarding.ErrProfileNotFound)

	details, err := uc.GetBookingDetails(context.Background(), booking.ID)

	assert.NoError(t, err)
	assert.Equal(t, booking, details.Booking)
	assert.Equal(t, "***", details.PassengerPhone)
}

func TestGetBookingDetails_ProfileStoreErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookingRepo(ctrl)
	mockProfiles := mocks.NewMockProfileRepo(ctrl)
	uc := NewPickupUC(mockRepo, mockProfiles)

	booking := bookingForScan("bus-1", models.BookingStatusBooked, scanDay)
	mockRepo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)
	mockProfiles.EXPECT().GetProfile(gomock.Any(), booking.PassengerID).
		Return(nil, errors.New("connection refused"))

	details, err := uc.GetBookingDetails(context.Background(), booking.ID)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, boarding.ErrProfileNotFound)
	assert.Nil(t, details)
}
