package http

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piyathilaka/routemate/internal/pkg/logger"
	"github.com/piyathilaka/routemate/internal/utils"
	"github.com/piyathilaka/routemate/services/boarding"
)

// PickupHandler exposes the pickup workflow transitions.
type PickupHandler struct {
	pickupUC boarding.PickupUseCase
}

// NewPickupHandler creates a new pickup HTTP handler
func NewPickupHandler(pickupUC boarding.PickupUseCase) *PickupHandler {
	return &PickupHandler{pickupUC: pickupUC}
}

// ConfirmPickup marks the passenger as reached and confirmed.
func (h *PickupHandler) ConfirmPickup(c echo.Context) error {
	return h.applyTransition(c, "Pickup confirmed", h.pickupUC.ConfirmPickup)
}

// MarkNoAnswer records an unanswered contact attempt.
func (h *PickupHandler) MarkNoAnswer(c echo.Context) error {
	return h.applyTransition(c, "Marked as no answer", h.pickupUC.MarkNoAnswer)
}

// CancelPickup cancels the pickup and the booking together, freeing the seat.
func (h *PickupHandler) CancelPickup(c echo.Context) error {
	return h.applyTransition(c, "Pickup cancelled", h.pickupUC.CancelPickup)
}

// MarkPickedUp completes the booking without a QR scan.
func (h *PickupHandler) MarkPickedUp(c echo.Context) error {
	return h.applyTransition(c, "Passenger picked up", h.pickupUC.MarkPickedUp)
}

// MarkNoShow closes the booking for a passenger who never appeared.
func (h *PickupHandler) MarkNoShow(c echo.Context) error {
	return h.applyTransition(c, "Marked as no show", h.pickupUC.MarkNoShow)
}

// GetBookingDetails returns the booking with passenger name and masked phone.
func (h *PickupHandler) GetBookingDetails(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	details, err := h.pickupUC.GetBookingDetails(c.Request().Context(), bookingID)
	if err != nil {
		if errors.Is(err, boarding.ErrBookingNotFound) {
			return utils.NotFoundResponse(c, "Booking not found")
		}
		logger.Error("Failed to get booking details",
			logger.String("booking_id", bookingID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, 200, "Booking retrieved successfully", details)
}

func (h *PickupHandler) applyTransition(c echo.Context, message string, apply func(context.Context, uuid.UUID) error) error {
	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	if err := apply(c.Request().Context(), bookingID); err != nil {
		switch {
		case errors.Is(err, boarding.ErrBookingNotFound):
			return utils.NotFoundResponse(c, "Booking not found")
		case errors.Is(err, boarding.ErrConflict):
			return utils.ErrorResponseHandler(c, 409, "Booking is not in the required state")
		default:
			logger.Error("Pickup transition failed",
				logger.String("booking_id", bookingID.String()),
				logger.Err(err))
			return utils.InternalServerErrorResponse(c, "")
		}
	}

	return utils.SuccessResponse(c, 200, message, nil)
}
