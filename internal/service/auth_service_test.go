package service

import (
	"context"
	"testing"

	"clinic_booking/internal/model"
	"clinic_booking/internal/repository"
	"clinic_booking/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(repo *mockUserRepo) AuthService {
	return NewAuthService(repo, utils.NewSessionUtil("test-secret", 1))
}

func TestAuthService_Register_ForcesPatientRole(t *testing.T) {
	var created *model.User
	repo := &mockUserRepo{
		createFn: func(ctx context.Context, user *model.User) error {
			user.ID = 1
			created = user
			return nil
		},
	}
	svc := newAuthService(repo)

	user, err := svc.Register(context.Background(), "alice", "alice@example.com", "pass123", "female")

	require.NoError(t, err)
	assert.Equal(t, model.RolePatient, user.Role)
	assert.Equal(t, model.RolePatient, created.Role)
	require.NotNil(t, user.Gender)
	assert.Equal(t, "female", *user.Gender)
	assert.False(t, user.DateCreated.IsZero())
	// Never store plaintext
	assert.NotEqual(t, "pass123", created.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("pass123", created.PasswordHash))
}

func TestAuthService_Register_EmptyGenderStaysNil(t *testing.T) {
	repo := &mockUserRepo{
		createFn: func(ctx context.Context, user *model.User) error { return nil },
	}
	svc := newAuthService(repo)

	user, err := svc.Register(context.Background(), "bob", "bob@example.com", "pass123", "")

	require.NoError(t, err)
	assert.Nil(t, user.Gender)
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := &mockUserRepo{
		createFn: func(ctx context.Context, user *model.User) error {
			return repository.ErrDuplicateUser
		},
	}
	svc := newAuthService(repo)

	_, err := svc.Register(context.Background(), "alice", "alice@example.com", "pass123", "")

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	hash, _ := utils.HashPassword("secret-pw")
	repo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: 9, Email: email, PasswordHash: hash, Role: model.RoleDoctor}, nil
		},
	}
	svc := newAuthService(repo)

	user, token, err := svc.Login(context.Background(), "doc@example.com", "secret-pw")

	require.NoError(t, err)
	assert.Equal(t, model.RoleDoctor, user.Role)

	// The session payload carries the user's stored id and role.
	claims, err := utils.NewSessionUtil("test-secret", 1).ValidateSession(token)
	require.NoError(t, err)
	assert.Equal(t, 9, claims.UserID)
	assert.Equal(t, model.RoleDoctor, claims.Role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, _ := utils.HashPassword("right-pw")
	repo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: 9, Email: email, PasswordHash: hash, Role: model.RolePatient}, nil
		},
	}
	svc := newAuthService(repo)

	_, token, err := svc.Login(context.Background(), "p@example.com", "wrong-pw")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return nil, nil
		},
	}
	svc := newAuthService(repo)

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")

	// Indistinguishable from a wrong password.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_EnsureBootstrapAdmin_CreatesOnce(t *testing.T) {
	var created *model.User
	repo := &mockUserRepo{
		countByRoleFn: func(ctx context.Context, role string) (int64, error) { return 0, nil },
		createFn: func(ctx context.Context, user *model.User) error {
			user.ID = 1
			created = user
			return nil
		},
	}
	svc := newAuthService(repo)

	err := svc.EnsureBootstrapAdmin(context.Background(), "admin", "admin@gmail.com", "admin123")

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, model.RoleAdmin, created.Role)
	assert.Equal(t, "admin@gmail.com", created.Email)
	assert.True(t, utils.CheckPasswordHash("admin123", created.PasswordHash))
}

func TestAuthService_EnsureBootstrapAdmin_SkipsWhenAdminExists(t *testing.T) {
	repo := &mockUserRepo{
		countByRoleFn: func(ctx context.Context, role string) (int64, error) { return 1, nil },
		createFn: func(ctx context.Context, user *model.User) error {
			t.Fatal("Create must not be called when an admin already exists")
			return nil
		},
	}
	svc := newAuthService(repo)

	err := svc.EnsureBootstrapAdmin(context.Background(), "admin", "admin@gmail.com", "admin123")

	assert.NoError(t, err)
}

func TestAuthService_EnsureBootstrapAdmin_ConcurrentStartup(t *testing.T) {
	repo := &mockUserRepo{
		countByRoleFn: func(ctx context.Context, role string) (int64, error) { return 0, nil },
		createFn: func(ctx context.Context, user *model.User) error {
			return repository.ErrDuplicateUser
		},
	}
	svc := newAuthService(repo)

	// Another process won the race; that is not an error.
	err := svc.EnsureBootstrapAdmin(context.Background(), "admin", "admin@gmail.com", "admin123")

	assert.NoError(t, err)
}
