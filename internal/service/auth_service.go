package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"clinic_booking/internal/model"
	"clinic_booking/internal/repository"
	"clinic_booking/internal/utils"
)

var (
	ErrUserAlreadyExists  = errors.New("username or email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthService provides registration, login and the one-time admin bootstrap
type AuthService interface {
	Register(ctx context.Context, username, email, password, gender string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	EnsureBootstrapAdmin(ctx context.Context, username, email, password string) error
}

type authService struct {
	userRepo    repository.UserRepository
	sessionUtil *utils.SessionUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, sessionUtil *utils.SessionUtil) AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionUtil: sessionUtil,
	}
}

// Register creates a new patient account. The role is always patient; there is
// no self-service path to any other role.
func (s *authService) Register(ctx context.Context, username, email, password, gender string) (*model.User, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         model.RolePatient,
		DateCreated:  time.Now().UTC(),
	}
	if gender != "" {
		user.Gender = &gender
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}

	return user, nil
}

// Login authenticates a user and returns a signed session token. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by email: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials // User not found
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials // Password mismatch
	}

	token, err := s.sessionUtil.IssueSession(user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue session: %w", err)
	}

	return user, token, nil
}

// EnsureBootstrapAdmin inserts the fixed admin account if no admin row exists
// yet. Safe to call on every startup; it creates at most one admin.
func (s *authService) EnsureBootstrapAdmin(ctx context.Context, username, email, password string) error {
	count, err := s.userRepo.CountByRole(ctx, model.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to check for existing admin: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap admin password: %w", err)
	}

	admin := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         model.RoleAdmin,
		DateCreated:  time.Now().UTC(),
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		// A concurrent startup may have created it between the count and the
		// insert; the unique constraint makes that harmless.
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil
		}
		return fmt.Errorf("failed to create bootstrap admin: %w", err)
	}

	log.Printf("Bootstrap admin %s created", email)
	return nil
}
