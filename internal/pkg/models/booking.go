package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus is the seat lifecycle state of a booking.
type BookingStatus string

const (
	BookingStatusBooked    BookingStatus = "BOOKED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusNoShow    BookingStatus = "NO_SHOW"
)

// PickupStatus is the crew-recorded outcome of contacting the passenger.
type PickupStatus string

const (
	PickupStatusPending   PickupStatus = "PENDING"
	PickupStatusConfirmed PickupStatus = "CONFIRMED"
	PickupStatusNoAnswer  PickupStatus = "NO_ANSWER"
	PickupStatusCancelled PickupStatus = "CANCELLED"
)

// Booking is the authoritative record scanned at boarding. Created by the
// booking collaborator, mutated only through paired status transitions so
// that pickup_status=CANCELLED always implies status=CANCELLED.
type Booking struct {
	ID           uuid.UUID     `json:"id" db:"id"`
	BusID        string        `json:"bus_id" db:"bus_id"`
	PassengerID  uuid.UUID     `json:"passenger_id" db:"passenger_id"`
	SeatNumber   string        `json:"seat_number" db:"seat_number"`
	TripDate     time.Time     `json:"trip_date" db:"trip_date"`
	Status       BookingStatus `json:"status" db:"status"`
	PickupStatus PickupStatus  `json:"pickup_status" db:"pickup_status"`
	CreatedAt    time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at" db:"updated_at"`
}

// CrewAssignment links a crew member to the bus they work on. Only an
// active assignment authorizes scans and passenger calls for that bus.
type CrewAssignment struct {
	CrewID   uuid.UUID `json:"crew_id" db:"crew_id"`
	BusID    string    `json:"bus_id" db:"bus_id"`
	IsActive bool      `json:"is_active" db:"is_active"`
}

// Profile carries the contact details the call bridge resolves. Raw phone
// numbers never leave the service.
type Profile struct {
	ID          uuid.UUID `json:"id" db:"id"`
	FullName    string    `json:"full_name" db:"full_name"`
	PhoneNumber string    `json:"-" db:"phone_number"`
	Role        string    `json:"role" db:"role"`
}
