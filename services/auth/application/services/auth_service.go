package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	authdomain "github.com/ghuser/stitchstock/services/auth/domain"
	"github.com/ghuser/stitchstock/services/auth/domain/models"
	"github.com/ghuser/stitchstock/services/auth/domain/repositories"
)

// AuthService authenticates users and manages accounts. Session issuance is
// handled at the HTTP boundary (gorilla sessions); this service only verifies
// credentials and owns the user records.
type AuthService struct {
	users repositories.UserRepository
}

// NewAuthService returns an AuthService wired with the given repository.
func NewAuthService(users repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Login verifies the username/password pair. Unknown usernames and wrong
// passwords both surface ErrInvalidCredentials so callers cannot probe for
// account existence; inactive accounts are reported as such only after the
// password checks out.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, authdomain.ErrUserNotFound) {
			return nil, authdomain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, authdomain.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, authdomain.ErrUserInactive
	}

	return user, nil
}

// CreateUser registers a new account with a bcrypt-hashed password.
func (s *AuthService) CreateUser(ctx context.Context, username, password, fullName, email, role string) (*models.User, error) {
	parsedRole, err := models.ParseRole(role)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.NewUser(username, string(hash), fullName, email, parsedRole)
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// GetUser returns the account for the given identity.
func (s *AuthService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}
