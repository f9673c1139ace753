package repository

import (
	"context"
	"fmt"

	"clinic_booking/internal/model"
)

// AppointmentRepository defines operations for appointment data. Appointments
// are insert-only; no handler updates or deletes them.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *model.Appointment) error
	FindByDoctor(ctx context.Context, doctorID int) ([]model.Appointment, error)
	FindByPatient(ctx context.Context, patientID int) ([]model.Appointment, error)
	FindAll(ctx context.Context) ([]model.Appointment, error)
}

type appointmentRepository struct {
	db DB
}

// NewAppointmentRepository creates a new AppointmentRepository
func NewAppointmentRepository(db DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

// Create inserts a new appointment into the database
func (r *appointmentRepository) Create(ctx context.Context, a *model.Appointment) error {
	sql := `INSERT INTO appointments (patient_id, doctor_id, datetime, status)
            VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRow(ctx, sql, a.PatientID, a.DoctorID, a.DateTime, a.Status).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

// FindByDoctor retrieves all appointments assigned to a doctor
func (r *appointmentRepository) FindByDoctor(ctx context.Context, doctorID int) ([]model.Appointment, error) {
	sql := `SELECT id, patient_id, doctor_id, datetime, status FROM appointments WHERE doctor_id = $1 ORDER BY datetime`
	return r.queryAppointments(ctx, sql, doctorID)
}

// FindByPatient retrieves all appointments booked by a patient
func (r *appointmentRepository) FindByPatient(ctx context.Context, patientID int) ([]model.Appointment, error) {
	sql := `SELECT id, patient_id, doctor_id, datetime, status FROM appointments WHERE patient_id = $1 ORDER BY datetime`
	return r.queryAppointments(ctx, sql, patientID)
}

// FindAll retrieves every appointment, for the admin dashboard
func (r *appointmentRepository) FindAll(ctx context.Context) ([]model.Appointment, error) {
	sql := `SELECT id, patient_id, doctor_id, datetime, status FROM appointments ORDER BY datetime`
	return r.queryAppointments(ctx, sql)
}

func (r *appointmentRepository) queryAppointments(ctx context.Context, sql string, args ...any) ([]model.Appointment, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer rows.Close()

	var appts []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.DateTime, &a.Status); err != nil {
			return nil, fmt.Errorf("failed to scan appointment row: %w", err)
		}
		appts = append(appts, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating appointment rows: %w", err)
	}
	return appts, nil
}
