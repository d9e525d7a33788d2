package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piyathilaka/routemate/internal/pkg/models"
	"github.com/piyathilaka/routemate/services/boarding"
)

type callLogRepo struct {
	db *sqlx.DB
}

// NewCallLogRepository creates the call audit trail accessor.
func NewCallLogRepository(db *sqlx.DB) boarding.CallLogRepo {
	return &callLogRepo{db: db}
}

// Append inserts one audit row. The table is append-only; there is no
// update or delete path.
func (r *callLogRepo) Append(ctx context.Context, log *models.CallLog) error {
	query := `
		INSERT INTO call_logs (id, booking_id, crew_id, call_sid, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		log.ID,
		log.BookingID,
		log.CrewID,
		log.CallSID,
		log.Status,
		log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append call log: %w", err)
	}

	return nil
}
