package boarding

import "errors"

var (
	// ErrBookingNotFound is returned when a booking id resolves to nothing.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrProfileNotFound is returned when a user id has no profile row.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrConflict is returned when a conditional transition matched no
	// row, meaning the booking moved on concurrently.
	ErrConflict = errors.New("booking is not in the required state")

	// ErrNotAuthorized is returned when the crew member has no active
	// assignment to the booking's bus. No side effects are performed.
	ErrNotAuthorized = errors.New("crew member is not assigned to this bus")

	// ErrMissingPhone is returned when either party has no phone number
	// on record. The bridge fails closed.
	ErrMissingPhone = errors.New("contact number not available")

	// ErrTelephonyFailure wraps provider errors. Reported once, never
	// retried automatically.
	ErrTelephonyFailure = errors.New("telephony provider failure")
)
