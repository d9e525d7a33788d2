package http

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piyathilaka/routemate/internal/pkg/logger"
	"github.com/piyathilaka/routemate/internal/utils"
	"github.com/piyathilaka/routemate/services/boarding"
)

// CallHandler exposes the masked call bridge.
type CallHandler struct {
	callUC boarding.CallUseCase
}

// NewCallHandler creates a new call HTTP handler
func NewCallHandler(callUC boarding.CallUseCase) *CallHandler {
	return &CallHandler{callUC: callUC}
}

// InitiateCall bridges the authenticated crew member to the booking's
// passenger. The response never contains a phone number.
func (h *CallHandler) InitiateCall(c echo.Context) error {
	crewID, err := uuid.Parse(fmt.Sprintf("%v", c.Get("user_id")))
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	result, err := h.callUC.InitiateCall(c.Request().Context(), crewID, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, boarding.ErrBookingNotFound):
			return utils.NotFoundResponse(c, "Booking not found")
		case errors.Is(err, boarding.ErrNotAuthorized):
			return utils.ForbiddenResponse(c, "Not assigned to this bus")
		case errors.Is(err, boarding.ErrMissingPhone):
			return utils.ErrorResponseHandler(c, 409, "Contact number not available")
		case errors.Is(err, boarding.ErrTelephonyFailure):
			return utils.BadGatewayResponse(c, "Could not place call")
		default:
			logger.Error("Failed to initiate call",
				logger.String("booking_id", bookingID.String()),
				logger.Err(err))
			return utils.InternalServerErrorResponse(c, "")
		}
	}

	return utils.SuccessResponse(c, 200, result.Message, result)
}
