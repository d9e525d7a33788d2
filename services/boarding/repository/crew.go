package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piyathilaka/routemate/services/boarding"
)

type crewRepo struct {
	db *sqlx.DB
}

// NewCrewRepository creates the crew assignment accessor.
func NewCrewRepository(db *sqlx.DB) boarding.CrewRepo {
	return &crewRepo{db: db}
}

// HasActiveAssignment reports whether the crew member currently works the bus.
func (r *crewRepo) HasActiveAssignment(ctx context.Context, crewID uuid.UUID, busID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM crew_assignments
			WHERE crew_id = $1 AND bus_id = $2 AND is_active = TRUE
		)
	`

	var assigned bool
	if err := r.db.QueryRowContext(ctx, query, crewID, busID).Scan(&assigned); err != nil {
		return false, fmt.Errorf("failed to check crew assignment: %w", err)
	}

	return assigned, nil
}
