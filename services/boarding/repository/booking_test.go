package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piyathilaka/routemate/internal/pkg/models"
	"github.com/piyathilaka/routemate/services/boarding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func bookingRows(id uuid.UUID, status models.BookingStatus) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "bus_id", "passenger_id", "seat_number", "trip_date",
		"status", "pickup_status", "created_at", "updated_at",
	}).AddRow(id, "bus-1", uuid.New(), "12A", now, status, models.PickupStatusPending, now, now)
}

func TestGetBooking_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	bookingID := uuid.New()
	mock.ExpectQuery("SELECT id, bus_id, passenger_id").
		WithArgs(bookingID).
		WillReturnRows(bookingRows(bookingID, models.BookingStatusBooked))

	booking, err := repo.GetBooking(context.Background(), bookingID)

	assert.NoError(t, err)
	assert.Equal(t, bookingID, booking.ID)
	assert.Equal(t, models.BookingStatusBooked, booking.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBooking_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	bookingID := uuid.New()
	mock.ExpectQuery("SELECT id, bus_id, passenger_id").
		WithArgs(bookingID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	booking, err := repo.GetBooking(context.Background(), bookingID)

	assert.ErrorIs(t, err, boarding.ErrBookingNotFound)
	assert.Nil(t, booking)
}

func TestMarkTicketUsed_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	bookingID := uuid.New()
	mock.ExpectExec("UPDATE bookings").
		WithArgs(bookingID, models.BookingStatusCompleted, models.PickupStatusConfirmed, models.BookingStatusBooked).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkTicketUsed(context.Background(), bookingID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkTicketUsed_AlreadyCompletedIsConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	bookingID := uuid.New()
	mock.ExpectExec("UPDATE bookings").
		WithArgs(bookingID, models.BookingStatusCompleted, models.PickupStatusConfirmed, models.BookingStatusBooked).
		WillReturnResult(sqlmock.NewResult(0, 0))
	// Zero rows triggers a re-read to tell conflict from missing.
	mock.ExpectQuery("SELECT id, bus_id, passenger_id").
		WithArgs(bookingID).
		WillReturnRows(bookingRows(bookingID, models.BookingStatusCompleted))

	err := repo.MarkTicketUsed(context.Background(), bookingID)

	assert.ErrorIs(t, err, boarding.ErrConflict)
}

func TestMarkTicketUsed_MissingBooking(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	bookingID := uuid.New()
	mock.ExpectExec("UPDATE bookings").
		WithArgs(bookingID, models.BookingStatusCompleted, models.PickupStatusConfirmed, models.BookingStatusBooked).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT id, bus_id, passenger_id").
		WithArgs(bookingID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := repo.MarkTicketUsed(context.Background(), bookingID)

	assert.ErrorIs(t, err, boarding.ErrBookingNotFound)
}

func TestSetPickupStatus_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	bookingID := uuid.New()
	mock.ExpectExec("UPDATE bookings").
		WithArgs(bookingID, models.PickupStatusNoAnswer).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetPickupStatus(context.Background(), bookingID, models.PickupStatusNoAnswer)

	assert.NoError(t, err)
}

func TestSetPickupAndBookingStatus_SingleStatement(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	bookingID := uuid.New()
	mock.ExpectExec("UPDATE bookings").
		WithArgs(bookingID, models.PickupStatusCancelled, models.BookingStatusCancelled).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetPickupAndBookingStatus(context.Background(), bookingID,
		models.PickupStatusCancelled, models.BookingStatusCancelled)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetPickupAndBookingStatus_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	bookingID := uuid.New()
	mock.ExpectExec("UPDATE bookings").
		WithArgs(bookingID, models.PickupStatusCancelled, models.BookingStatusCancelled).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetPickupAndBookingStatus(context.Background(), bookingID,
		models.PickupStatusCancelled, models.BookingStatusCancelled)

	assert.ErrorIs(t, err, boarding.ErrBookingNotFound)
}
