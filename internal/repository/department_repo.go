package repository

import (
	"context"
	"errors"
	"fmt"

	"clinic_booking/internal/model"
)

var ErrDuplicateDepartment = errors.New("department name already taken")

// DepartmentRepository defines operations for department data. Departments
// have no update or deletion path.
type DepartmentRepository interface {
	Create(ctx context.Context, dept *model.Department) error
	FindAll(ctx context.Context) ([]model.Department, error)
}

type departmentRepository struct {
	db DB
}

// NewDepartmentRepository creates a new DepartmentRepository
func NewDepartmentRepository(db DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

// Create inserts a new department into the database
func (r *departmentRepository) Create(ctx context.Context, dept *model.Department) error {
	sql := `INSERT INTO departments (name, description) VALUES ($1, $2) RETURNING id`
	err := r.db.QueryRow(ctx, sql, dept.Name, dept.Description).Scan(&dept.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateDepartment
		}
		return fmt.Errorf("failed to create department: %w", err)
	}
	return nil
}

// FindAll retrieves every department
func (r *departmentRepository) FindAll(ctx context.Context) ([]model.Department, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, description FROM departments ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer rows.Close()

	var depts []model.Department
	for rows.Next() {
		var d model.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Description); err != nil {
			return nil, fmt.Errorf("failed to scan department row: %w", err)
		}
		depts = append(depts, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating department rows: %w", err)
	}
	return depts, nil
}
