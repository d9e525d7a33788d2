package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piyathilaka/routemate/internal/pkg/models"
	"github.com/piyathilaka/routemate/internal/utils"
	"github.com/piyathilaka/routemate/services/boarding"
	"github.com/piyathilaka/routemate/services/boarding/mocks"
	"github.com/piyathilaka/routemate/services/boarding/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(e *echo.Echo, target, body string, crewID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", crewID)
	return c, rec
}

func newTicketHandler(ctrl *gomock.Controller) (*TicketHandler, *mocks.MockBookingRepo, *mocks.MockCrewRepo) {
	mockRepo := mocks.NewMockBookingRepo(ctrl)
	mockCrew := mocks.NewMockCrewRepo(ctrl)
	return NewTicketHandler(usecase.NewTicketUC(mockRepo, mockCrew)), mockRepo, mockCrew
}

func TestValidateTicket_ValidScanReturnsVerdict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, mockRepo, mockCrew := newTicketHandler(ctrl)
	crewID := uuid.New()

	booking := &models.Booking{
		ID:          uuid.New(),
		BusID:       "bus-1",
		PassengerID: uuid.New(),
		TripDate:    time.Now(),
		Status:      models.BookingStatusBooked,
	}
	mockCrew.EXPECT().HasActiveAssignment(gomock.Any(), crewID, "bus-1").Return(true, nil)
	mockRepo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)

	e := echo.New()
	body := `{"qr_data":"` + booking.ID.String() + `","bus_id":"bus-1"}`
	c, rec := postJSON(e, "/tickets/validate", body, crewID)

	require.NoError(t, handler.ValidateTicket(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "Valid ticket - Allow boarding", envelope.Message)
}

func TestValidateTicket_MissingBusID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, _, _ := newTicketHandler(ctrl)

	e := echo.New()
	c, rec := postJSON(e, "/tickets/validate", `{"qr_data":"whatever"}`, uuid.New())

	require.NoError(t, handler.ValidateTicket(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidateTicket_UnassignedCrewGets403(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, _, mockCrew := newTicketHandler(ctrl)
	crewID := uuid.New()
	mockCrew.EXPECT().HasActiveAssignment(gomock.Any(), crewID, "bus-2").Return(false, nil)

	e := echo.New()
	c, rec := postJSON(e, "/tickets/validate", `{"qr_data":"`+uuid.New().String()+`","bus_id":"bus-2"}`, crewID)

	require.NoError(t, handler.ValidateTicket(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Not assigned to this bus")
}

func TestValidateTicket_NegativeVerdictIsStill200(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, _, mockCrew := newTicketHandler(ctrl)
	crewID := uuid.New()
	mockCrew.EXPECT().HasActiveAssignment(gomock.Any(), crewID, "bus-1").Return(true, nil)

	e := echo.New()
	c, rec := postJSON(e, "/tickets/validate", `{"qr_data":"","bus_id":"bus-1"}`, crewID)

	require.NoError(t, handler.ValidateTicket(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid QR code")
}

func TestMarkTicketUsed_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, mockRepo, mockCrew := newTicketHandler(ctrl)
	crewID := uuid.New()

	booking := &models.Booking{
		ID:     uuid.New(),
		BusID:  "bus-1",
		Status: models.BookingStatusCompleted,
	}
	mockRepo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)
	mockCrew.EXPECT().HasActiveAssignment(gomock.Any(), crewID, "bus-1").Return(true, nil)
	mockRepo.EXPECT().MarkTicketUsed(gomock.Any(), booking.ID).Return(boarding.ErrConflict)

	e := echo.New()
	c, rec := postJSON(e, "/", "", crewID)
	c.SetPath("/tickets/:bookingId/use")
	c.SetParamNames("bookingId")
	c.SetParamValues(booking.ID.String())

	require.NoError(t, handler.MarkTicketUsed(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestMarkTicketUsed_BadBookingID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, _, _ := newTicketHandler(ctrl)

	e := echo.New()
	c, rec := postJSON(e, "/", "", uuid.New())
	c.SetPath("/tickets/:bookingId/use")
	c.SetParamNames("bookingId")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, handler.MarkTicketUsed(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMarkTicketUsed_UnassignedCrewGets403(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No MarkTicketUsed expectation: the booking must stay untouched.
	handler, mockRepo, mockCrew := newTicketHandler(ctrl)
	crewID := uuid.New()

	booking := &models.Booking{
		ID:     uuid.New(),
		BusID:  "bus-1",
		Status: models.BookingStatusBooked,
	}
	mockRepo.EXPECT().GetBooking(gomock.Any(), booking.ID).Return(booking, nil)
	mockCrew.EXPECT().HasActiveAssignment(gomock.Any(), crewID, "bus-1").Return(false, nil)

	e := echo.New()
	c, rec := postJSON(e, "/", "", crewID)
	c.SetPath("/tickets/:bookingId/use")
	c.SetParamNames("bookingId")
	c.SetParamValues(booking.ID.String())

	require.NoError(t, handler.MarkTicketUsed(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
