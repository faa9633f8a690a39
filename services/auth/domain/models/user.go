package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/stitchstock/services/auth/domain"
)

// Role is a user's authorization level.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
	RoleTailor   Role = "tailor"
)

// ParseRole validates a raw role name.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleAdmin, RoleEmployee, RoleTailor:
		return Role(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidRole, raw)
	}
}

// User is an account that can authenticate and act on the inventory.
// PasswordHash is a bcrypt hash; the cleartext never leaves the login handler.
type User struct {
	UserID       string
	Username     string
	PasswordHash string
	FullName     string
	Email        string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
}

// NewUser constructs a User with a generated identity and current timestamp.
// The caller supplies an already-hashed password.
func NewUser(username, passwordHash, fullName, email string, role Role) *User {
	return &User{
		UserID:       uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
		FullName:     fullName,
		Email:        email,
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
}
