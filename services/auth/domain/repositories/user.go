package repositories

import (
	"context"

	"github.com/ghuser/stitchstock/services/auth/domain/models"
)

// UserRepository is the persistence interface for user accounts.
// The domain layer owns this interface; infrastructure implements it.
type UserRepository interface {
	// Create persists a new user. Returns ErrUsernameTaken on a username collision.
	Create(ctx context.Context, user *models.User) error

	// GetByUsername returns ErrUserNotFound if no such username exists.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// GetByID returns ErrUserNotFound if the identity is absent.
	GetByID(ctx context.Context, userID string) (*models.User, error)
}
