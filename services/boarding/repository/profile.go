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

type profileRepo struct {
	db *sqlx.DB
}

// NewProfileRepository creates the profile accessor.
func NewProfileRepository(db *sqlx.DB) boarding.ProfileRepo {
	return &profileRepo{db: db}
}

func (r *profileRepo) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	query := `
		SELECT id, full_name, phone_number, role
		FROM profiles
		WHERE id = $1
	`

	profile := &models.Profile{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&profile.ID,
		&profile.FullName,
		&profile.PhoneNumber,
		&profile.Role,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, boarding.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile, nil
}
