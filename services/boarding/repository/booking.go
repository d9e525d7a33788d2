package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piyathilaka/routemate/internal/pkg/models"
	"github.com/piyathilaka/routemate/services/boarding"
)

type bookingRepo struct {
	db *sqlx.DB
}

// NewBookingRepository creates the BookingStore accessor.
func NewBookingRepository(db *sqlx.DB) boarding.BookingRepo {
	return &bookingRepo{db: db}
}

// GetBooking retrieves a booking by id
func (r *bookingRepo) GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	query := `
		SELECT id, bus_id, passenger_id, seat_number, trip_date,
		       status, pickup_status, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	booking := &models.Booking{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&booking.ID,
		&booking.BusID,
		&booking.PassengerID,
		&booking.SeatNumber,
		&booking.TripDate,
		&booking.Status,
		&booking.PickupStatus,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, boarding.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return booking, nil
}

// MarkTicketUsed completes a boarding in one conditional statement. The
// status guard makes concurrent scans serialize: only one wins, the rest
// see ErrConflict.
func (r *bookingRepo) MarkTicketUsed(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE bookings
		SET status = $2, pickup_status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $4
	`

	result, err := r.db.ExecContext(ctx, query, id,
		models.BookingStatusCompleted,
		models.PickupStatusConfirmed,
		models.BookingStatusBooked,
	)
	if err != nil {
		return fmt.Errorf("failed to mark ticket used: %w", err)
	}

	return r.checkTransition(ctx, result, id)
}

// SetPickupStatus updates pickup_status alone.
func (r *bookingRepo) SetPickupStatus(ctx context.Context, id uuid.UUID, pickup models.PickupStatus) error {
	query := `
		UPDATE bookings
		SET pickup_status = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id, pickup)
	if err != nil {
		return fmt.Errorf("failed to update pickup status: %w", err)
	}

	return r.checkRows(result)
}

// SetPickupAndBookingStatus pairs the two fields in a single statement so
// the seat-freed invariant holds under concurrency.
func (r *bookingRepo) SetPickupAndBookingStatus(ctx context.Context, id uuid.UUID, pickup models.PickupStatus, status models.BookingStatus) error {
	query := `
		UPDATE bookings
		SET pickup_status = $2, status = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id, pickup, status)
	if err != nil {
		return fmt.Errorf("failed to update booking statuses: %w", err)
	}

	return r.checkRows(result)
}

// checkRows maps a zero-row update to not-found.
func (r *bookingRepo) checkRows(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return boarding.ErrBookingNotFound
	}
	return nil
}

// checkTransition distinguishes a missing booking from a conditional
// update that lost the race.
func (r *bookingRepo) checkTransition(ctx context.Context, result sql.Result, id uuid.UUID) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows > 0 {
		return nil
	}

	if _, err := r.GetBooking(ctx, id); err != nil {
		return err
	}
	return boarding.ErrConflict
}
