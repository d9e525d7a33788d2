package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piyathilaka/routemate/internal/pkg/models"
	"github.com/piyathilaka/routemate/services/boarding"
	"github.com/piyathilaka/routemate/services/boarding/mocks"
	"github.com/piyathilaka/routemate/services/boarding/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type callHandlerFixture struct {
	bookingRepo *mocks.MockBookingRepo
	crewRepo    *mocks.MockCrewRepo
	profileRepo *mocks.MockProfileRepo
	callLogRepo *mocks.MockCallLogRepo
	telephony   *mocks.MockTelephonyGW
	handler     *CallHandler
}

func newCallHandlerFixture(ctrl *gomock.Controller) *callHandlerFixture {
	f := &callHandlerFixture{
		bookingRepo: mocks.NewMockBookingRepo(ctrl),
		crewRepo:    mocks.NewMockCrewRepo(ctrl),
		profileRepo: mocks.NewMockProfileRepo(ctrl),
		callLogRepo: mocks.NewMockCallLogRepo(ctrl),
		telephony:   mocks.NewMockTelephonyGW(ctrl),
	}
	cfg := &models.Config{Telephony: models.TelephonyConfig{CallerID: "+94112000000"}}
	f.handler = NewCallHandler(usecase.NewCallUC(
		f.bookingRepo, f.crewRepo, f.profileRepo, f.callLogRepo, f.telephony, cfg,
	))
	return f
}

func callContext(e *echo.Echo, crewID uuid.UUID, bookingID string) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := postJSON(e, "/", "", crewID)
	c.SetPath("/calls/bookings/:bookingId")
	c.SetParamNames("bookingId")
	c.SetParamValues(bookingID)
	return c, rec
}

func TestInitiateCall_ResponseNeverContainsPhoneNumbers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCallHandlerFixture(ctrl)
	crewID := uuid.New()
	booking := &models.Booking{
		ID:          uuid.New(),
		BusID:       "bus-1",
		PassengerID: uuid.New(),
		Status:      models.BookingStatusBooked,
	}

	f.bookingRepo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)
	f.crewRepo.EXPECT().HasActiveAssignment(gomock.Any(), crewID, "bus-1").Return(true, nil)
	f.profileRepo.EXPECT().GetProfile(gomock.Any(), crewID).Return(&models.Profile{
		ID: crewID, PhoneNumber: "+94770000001",
	}, nil)
	f.profileRepo.EXPECT().GetProfile(gomock.Any(), booking.PassengerID).Return(&models.Profile{
		ID: booking.PassengerID, PhoneNumber: "+94770000002",
	}, nil)
	f.telephony.EXPECT().BridgeCall(gomock.Any(), gomock.Any()).
		Return(&models.BridgeCallResponse{CallSID: "CA123", Status: "INITIATED"}, nil)
	f.callLogRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

	e := echo.New()
	c, rec := callContext(e, crewID, booking.ID.String())

	require.NoError(t, f.handler.InitiateCall(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "CA123")
	assert.NotContains(t, rec.Body.String(), "+94770000001")
	assert.NotContains(t, rec.Body.String(), "+94770000002")
}

func TestInitiateCall_UnassignedCrewIsForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCallHandlerFixture(ctrl)
	crewID := uuid.New()
	booking := &models.Booking{
		ID:          uuid.New(),
		BusID:       "bus-1",
		PassengerID: uuid.New(),
		Status:      models.BookingStatusBooked,
	}

	f.bookingRepo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)
	f.crewRepo.EXPECT().HasActiveAssignment(gomock.Any(), crewID, "bus-1").Return(false, nil)

	e := echo.New()
	c, rec := callContext(e, crewID, booking.ID.String())

	require.NoError(t, f.handler.InitiateCall(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestInitiateCall_ProviderFailureIsBadGateway(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCallHandlerFixture(ctrl)
	crewID := uuid.New()
	booking := &models.Booking{
		ID:          uuid.New(),
		BusID:       "bus-1",
		PassengerID: uuid.New(),
		Status:      models.BookingStatusBooked,
	}

	f.bookingRepo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)
	f.crewRepo.EXPECT().HasActiveAssignment(gomock.Any(), crewID, "bus-1").Return(true, nil)
	f.profileRepo.EXPECT().GetProfile(gomock.Any(), crewID).Return(&models.Profile{
		ID: crewID, PhoneNumber: "+94770000001",
	}, nil)
	f.profileRepo.EXPECT().GetProfile(gomock.Any(), booking.PassengerID).Return(&models.Profile{
		ID: booking.PassengerID, PhoneNumber: "+94770000002",
	}, nil)
	f.telephony.EXPECT().BridgeCall(gomock.Any(), gomock.Any()).
		Return(nil, boarding.ErrTelephonyFailure)
	f.callLogRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

	e := echo.New()
	c, rec := callContext(e, crewID, booking.ID.String())

	require.NoError(t, f.handler.InitiateCall(c))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestInitiateCall_BadBookingID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCallHandlerFixture(ctrl)

	e := echo.New()
	c, rec := callContext(e, uuid.New(), "not-a-uuid")

	require.NoError(t, f.handler.InitiateCall(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
