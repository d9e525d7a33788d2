package http

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piyathilaka/routemate/internal/pkg/logger"
	"github.com/piyathilaka/routemate/internal/pkg/models"
	"github.com/piyathilaka/routemate/internal/utils"
	"github.com/piyathilaka/routemate/services/boarding"
)

// TicketHandler exposes the QR scan endpoints used by crew devices.
type TicketHandler struct {
	ticketUC boarding.TicketUseCase
}

// NewTicketHandler creates a new ticket HTTP handler
func NewTicketHandler(ticketUC boarding.TicketUseCase) *TicketHandler {
	return &TicketHandler{ticketUC: ticketUC}
}

// ValidateTicket evaluates a scanned QR against the scanning bus. Negative
// verdicts come back as 200 with valid=false; only authorization and
// infrastructure failures surface as errors.
func (h *TicketHandler) ValidateTicket(c echo.Context) error {
	crewID, err := uuid.Parse(fmt.Sprintf("%v", c.Get("user_id")))
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.ValidateTicketRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if req.BusID == "" {
		return utils.BadRequestResponse(c, "Bus ID is required")
	}

	verdict, err := h.ticketUC.ValidateTicket(c.Request().Context(), crewID, &req)
	if err != nil {
		if errors.Is(err, boarding.ErrNotAuthorized) {
			return utils.ForbiddenResponse(c, "Not assigned to this bus")
		}
		logger.Error("Ticket validation failed",
			logger.String("bus_id", req.BusID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, 200, verdict.Message, verdict)
}

// MarkTicketUsed completes the boarding after a VALID scan.
func (h *TicketHandler) MarkTicketUsed(c echo.Context) error {
	crewID, err := uuid.Parse(fmt.Sprintf("%v", c.Get("user_id")))
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	if err := h.ticketUC.MarkTicketUsed(c.Request().Context(), crewID, bookingID); err != nil {
		switch {
		case errors.Is(err, boarding.ErrBookingNotFound):
			return utils.NotFoundResponse(c, "Booking not found")
		case errors.Is(err, boarding.ErrNotAuthorized):
			return utils.ForbiddenResponse(c, "Not assigned to this bus")
		case errors.Is(err, boarding.ErrConflict):
			return utils.ErrorResponseHandler(c, 409, "Ticket has already been used")
		default:
			logger.Error("Failed to mark ticket used",
				logger.String("booking_id", bookingID.String()),
				logger.Err(err))
			return utils.InternalServerErrorResponse(c, "")
		}
	}

	return utils.SuccessResponse(c, 200, "Ticket marked as used", nil)
}
