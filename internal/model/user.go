package model

import "time"

const (
	RoleAdmin   = "admin"
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

// User represents an account in the system. A single table holds all three
// roles; username and email are unique across roles.
type User struct {
	ID           int       `json:"id"`
	DepartmentID *int      `json:"department_id,omitempty"` // Pointer for optional field
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	Role         string    `json:"role"`
	Gender       *string   `json:"gender,omitempty"`
	DateCreated  time.Time `json:"date_created"`
}
