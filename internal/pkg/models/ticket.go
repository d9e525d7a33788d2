package models

// ValidationResult is the outcome code of a ticket scan.
type ValidationResult string

const (
	ResultValid          ValidationResult = "VALID"
	ResultNotFound       ValidationResult = "NOT_FOUND"
	ResultExpired        ValidationResult = "EXPIRED"
	ResultWrongBus       ValidationResult = "WRONG_BUS"
	ResultCancelled      ValidationResult = "CANCELLED"
	ResultAlreadyUsed    ValidationResult = "ALREADY_USED"
	ResultInvalidBooking ValidationResult = "INVALID_BOOKING"
)

// ValidateTicketRequest is the crew scanner's input: the QR payload is the
// booking id, busID identifies the bus the scanner is mounted on.
type ValidateTicketRequest struct {
	QRData string `json:"qr_data"`
	BusID  string `json:"bus_id"`
}

// TicketValidation is the scan verdict returned to the scanner.
type TicketValidation struct {
	Valid   bool             `json:"valid"`
	Result  ValidationResult `json:"result"`
	Message string           `json:"message"`
}
