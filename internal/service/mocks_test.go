package service

import (
	"context"

	"clinic_booking/internal/model"
)

type mockUserRepo struct {
	createFn      func(ctx context.Context, user *model.User) error
	findByEmailFn func(ctx context.Context, email string) (*model.User, error)
	findByIDFn    func(ctx context.Context, id int) (*model.User, error)
	findByRoleFn  func(ctx context.Context, role string) ([]model.User, error)
	countByRoleFn func(ctx context.Context, role string) (int64, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	return m.createFn(ctx, user)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return m.findByEmailFn(ctx, email)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int) (*model.User, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockUserRepo) FindByRole(ctx context.Context, role string) ([]model.User, error) {
	return m.findByRoleFn(ctx, role)
}

func (m *mockUserRepo) CountByRole(ctx context.Context, role string) (int64, error) {
	return m.countByRoleFn(ctx, role)
}

type mockDeptRepo struct {
	createFn  func(ctx context.Context, dept *model.Department) error
	findAllFn func(ctx context.Context) ([]model.Department, error)
}

func (m *mockDeptRepo) Create(ctx context.Context, dept *model.Department) error {
	return m.createFn(ctx, dept)
}

func (m *mockDeptRepo) FindAll(ctx context.Context) ([]model.Department, error) {
	return m.findAllFn(ctx)
}

type mockApptRepo struct {
	createFn        func(ctx context.Context, appt *model.Appointment) error
	findByDoctorFn  func(ctx context.Context, doctorID int) ([]model.Appointment, error)
	findByPatientFn func(ctx context.Context, patientID int) ([]model.Appointment, error)
	findAllFn       func(ctx context.Context) ([]model.Appointment, error)
}

func (m *mockApptRepo) Create(ctx context.Context, appt *model.Appointment) error {
	return m.createFn(ctx, appt)
}

func (m *mockApptRepo) FindByDoctor(ctx context.Context, doctorID int) ([]model.Appointment, error) {
	return m.findByDoctorFn(ctx, doctorID)
}

func (m *mockApptRepo) FindByPatient(ctx context.Context, patientID int) ([]model.Appointment, error) {
	return m.findByPatientFn(ctx, patientID)
}

func (m *mockApptRepo) FindAll(ctx context.Context) ([]model.Appointment, error) {
	return m.findAllFn(ctx)
}
