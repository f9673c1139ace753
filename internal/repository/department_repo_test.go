package repository

import (
	"context"
	"testing"

	"clinic_booking/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepartmentRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := NewDepartmentRepository(mock)

	desc := "walk-in and triage"
	dept := &model.Department{Name: "General Medicine", Description: &desc}

	mock.ExpectQuery(`INSERT INTO departments`).
		WithArgs(dept.Name, dept.Description).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))

	err = repo.Create(context.Background(), dept)

	assert.NoError(t, err)
	assert.Equal(t, 1, dept.ID)
}

func TestDepartmentRepository_Create_Duplicate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := NewDepartmentRepository(mock)

	dept := &model.Department{Name: "General Medicine"}

	mock.ExpectQuery(`INSERT INTO departments`).
		WithArgs(dept.Name, dept.Description).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err = repo.Create(context.Background(), dept)

	assert.ErrorIs(t, err, ErrDuplicateDepartment)
}

func TestDepartmentRepository_FindAll(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := NewDepartmentRepository(mock)

	mock.ExpectQuery(`SELECT (.+) FROM departments`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "description"}).
			AddRow(1, "General Medicine", (*string)(nil)).
			AddRow(2, "Cardiology", (*string)(nil)))

	depts, err := repo.FindAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, depts, 2)
	assert.Equal(t, "Cardiology", depts[1].Name)
}
