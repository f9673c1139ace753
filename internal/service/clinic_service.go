package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinic_booking/internal/model"
	"clinic_booking/internal/repository"
	"clinic_booking/internal/utils"
)

var (
	ErrDoctorNotFound   = errors.New("doctor not found")
	ErrInvalidDateTime  = errors.New("invalid date or time, use YYYY-MM-DD and HH:MM")
	ErrDepartmentExists = errors.New("department already exists")
)

const (
	bookingDateLayout = "2006-01-02"
	bookingTimeLayout = "15:04"
)

// AdminDashboard is everything the admin view renders, unfiltered.
type AdminDashboard struct {
	Doctors      []model.User        `json:"doctors"`
	Patients     []model.User        `json:"patients"`
	Appointments []model.Appointment `json:"appointments"`
	Departments  []model.Department  `json:"departments"`
}

// PatientDashboard is the patient's own appointments plus the bookable doctors.
type PatientDashboard struct {
	Appointments []model.Appointment `json:"appointments"`
	Doctors      []model.User        `json:"doctors"`
}

// ClinicService provides the role-scoped dashboard and booking operations
type ClinicService interface {
	AddDoctor(ctx context.Context, username, email, password string) (*model.User, error)
	AddDepartment(ctx context.Context, name, description string) (*model.Department, error)
	GetAdminDashboard(ctx context.Context) (*AdminDashboard, error)
	GetDoctorAppointments(ctx context.Context, doctorID int) ([]model.Appointment, error)
	GetPatientDashboard(ctx context.Context, patientID int) (*PatientDashboard, error)
	BookAppointment(ctx context.Context, patientID, doctorID int, date, timeOfDay string) (*model.Appointment, error)
}

type clinicService struct {
	userRepo repository.UserRepository
	deptRepo repository.DepartmentRepository
	apptRepo repository.AppointmentRepository
}

// NewClinicService creates a new ClinicService
func NewClinicService(userRepo repository.UserRepository, deptRepo repository.DepartmentRepository, apptRepo repository.AppointmentRepository) ClinicService {
	return &clinicService{
		userRepo: userRepo,
		deptRepo: deptRepo,
		apptRepo: apptRepo,
	}
}

// AddDoctor creates a doctor account. Same creation path as registration,
// but the role is always doctor and there is no gender field.
func (s *clinicService) AddDoctor(ctx context.Context, username, email, password string) (*model.User, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	doctor := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         model.RoleDoctor,
		DateCreated:  time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, doctor); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create doctor in repository: %w", err)
	}
	return doctor, nil
}

// AddDepartment creates a department. Departments have no update or deletion
// path once created.
func (s *clinicService) AddDepartment(ctx context.Context, name, description string) (*model.Department, error) {
	dept := &model.Department{Name: name}
	if description != "" {
		dept.Description = &description
	}

	if err := s.deptRepo.Create(ctx, dept); err != nil {
		if errors.Is(err, repository.ErrDuplicateDepartment) {
			return nil, ErrDepartmentExists
		}
		return nil, fmt.Errorf("failed to create department in repository: %w", err)
	}
	return dept, nil
}

// GetAdminDashboard fetches all doctors, all patients, all appointments and
// all departments, unpaginated.
func (s *clinicService) GetAdminDashboard(ctx context.Context) (*AdminDashboard, error) {
	doctors, err := s.userRepo.FindByRole(ctx, model.RoleDoctor)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctors: %w", err)
	}
	patients, err := s.userRepo.FindByRole(ctx, model.RolePatient)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch patients: %w", err)
	}
	appointments, err := s.apptRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}
	departments, err := s.deptRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch departments: %w", err)
	}

	return &AdminDashboard{
		Doctors:      doctors,
		Patients:     patients,
		Appointments: appointments,
		Departments:  departments,
	}, nil
}

// GetDoctorAppointments fetches appointments assigned to the given doctor
func (s *clinicService) GetDoctorAppointments(ctx context.Context, doctorID int) ([]model.Appointment, error) {
	appointments, err := s.apptRepo.FindByDoctor(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctor appointments: %w", err)
	}
	return appointments, nil
}

// GetPatientDashboard fetches the patient's appointments and the doctor list
func (s *clinicService) GetPatientDashboard(ctx context.Context, patientID int) (*PatientDashboard, error) {
	appointments, err := s.apptRepo.FindByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch patient appointments: %w", err)
	}
	doctors, err := s.userRepo.FindByRole(ctx, model.RoleDoctor)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctors: %w", err)
	}

	return &PatientDashboard{
		Appointments: appointments,
		Doctors:      doctors,
	}, nil
}

// BookAppointment creates an appointment for the patient with the given
// doctor. Date and time must match YYYY-MM-DD and 24-hour HH:MM exactly, and
// the doctor id must reference a user with role doctor. Overlapping bookings
// are accepted; there is no conflict check.
func (s *clinicService) BookAppointment(ctx context.Context, patientID, doctorID int, date, timeOfDay string) (*model.Appointment, error) {
	dt, err := time.Parse(bookingDateLayout+" "+bookingTimeLayout, date+" "+timeOfDay)
	if err != nil {
		return nil, ErrInvalidDateTime
	}

	doctor, err := s.userRepo.FindByID(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up doctor: %w", err)
	}
	if doctor == nil || doctor.Role != model.RoleDoctor {
		return nil, ErrDoctorNotFound
	}

	appointment := &model.Appointment{
		PatientID: patientID,
		DoctorID:  doctorID,
		DateTime:  dt,
		Status:    model.StatusScheduled,
	}

	if err := s.apptRepo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment in repository: %w", err)
	}
	return appointment, nil
}
