package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/stitchstock/pkg/database"
	authdomain "github.com/ghuser/stitchstock/services/auth/domain"
	"github.com/ghuser/stitchstock/services/auth/domain/models"
)

const pgUniqueViolation = "23505"

// UserRepository implements repositories.UserRepository against PostgreSQL.
type UserRepository struct {
	db *database.Database
}

// NewUserRepository returns a UserRepository backed by the given connection pool.
func NewUserRepository(db *database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create persists a new user. Returns ErrUsernameTaken on a username collision.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	_, err := r.db.DB().ExecContext(ctx, `
		INSERT INTO users (user_id, username, password_hash, full_name, email, role, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.UserID, user.Username, user.PasswordHash, user.FullName, user.Email,
		string(user.Role), user.IsActive, user.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return authdomain.ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByUsername returns ErrUserNotFound if no such username exists.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, `WHERE username = $1`, username)
}

// GetByID returns ErrUserNotFound if the identity is absent.
func (r *UserRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	return r.getOne(ctx, `WHERE user_id = $1`, userID)
}

func (r *UserRepository) getOne(ctx context.Context, where string, arg any) (*models.User, error) {
	var u models.User
	var role string
	var email sql.NullString
	err := r.db.DB().QueryRowContext(ctx, `
		SELECT user_id, username, password_hash, full_name, email, role, is_active, created_at
		FROM users `+where, arg,
	).Scan(&u.UserID, &u.Username, &u.PasswordHash, &u.FullName, &email, &role, &u.IsActive, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, authdomain.ErrUserNotFound
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	u.Email = email.String
	u.Role = models.Role(role)
	return &u, nil
}
