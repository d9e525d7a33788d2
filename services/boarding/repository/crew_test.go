package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHasActiveAssignment(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCrewRepository(db)

	crewID := uuid.New()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(crewID, "bus-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	assigned, err := repo.HasActiveAssignment(context.Background(), crewID, "bus-1")

	assert.NoError(t, err)
	assert.True(t, assigned)
}

func TestHasActiveAssignment_Inactive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCrewRepository(db)

	crewID := uuid.New()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(crewID, "bus-2").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	assigned, err := repo.HasActiveAssignment(context.Background(), crewID, "bus-2")

	assert.NoError(t, err)
	assert.False(t, assigned)
}
