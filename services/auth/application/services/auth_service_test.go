package services

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	authdomain "github.com/ghuser/stitchstock/services/auth/domain"
	"github.com/ghuser/stitchstock/services/auth/domain/models"
)

type fakeUserRepo struct {
	byUsername map[string]*models.User
	byID       map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byUsername: make(map[string]*models.User),
		byID:       make(map[string]*models.User),
	}
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if _, ok := f.byUsername[user.Username]; ok {
		return authdomain.ErrUsernameTaken
	}
	f.byUsername[user.Username] = user
	f.byID[user.UserID] = user
	return nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	u, ok := f.byUsername[username]
	if !ok {
		return nil, authdomain.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, userID string) (*models.User, error) {
	u, ok := f.byID[userID]
	if !ok {
		return nil, authdomain.ErrUserNotFound
	}
	return u, nil
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, password string, active bool) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.NewUser(username, string(hash), "Test User", "", models.RoleEmployee)
	user.IsActive = active
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeUserRepo()
	seeded := seedUser(t, repo, "asha", "s3cret-pass", true)
	svc := NewAuthService(repo)

	user, err := svc.Login(context.Background(), "asha", "s3cret-pass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.UserID != seeded.UserID {
		t.Fatalf("expected user %q, got %q", seeded.UserID, user.UserID)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "asha", "s3cret-pass", true)
	svc := NewAuthService(repo)

	_, err := svc.Login(context.Background(), "asha", "wrong-pass")
	if !errors.Is(err, authdomain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownUsername(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	// Unknown usernames must be indistinguishable from wrong passwords.
	_, err := svc.Login(context.Background(), "nobody", "whatever")
	if !errors.Is(err, authdomain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_InactiveUser(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "asha", "s3cret-pass", false)
	svc := NewAuthService(repo)

	_, err := svc.Login(context.Background(), "asha", "s3cret-pass")
	if !errors.Is(err, authdomain.ErrUserInactive) {
		t.Fatalf("expected ErrUserInactive, got %v", err)
	}

	// Wrong password on an inactive account still reports bad credentials.
	_, err = svc.Login(context.Background(), "asha", "wrong-pass")
	if !errors.Is(err, authdomain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials before activity check, got %v", err)
	}
}

func TestCreateUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	user, err := svc.CreateUser(context.Background(), "ravi", "longenough", "Ravi Kumar", "ravi@example.com", "tailor")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != models.RoleTailor {
		t.Errorf("expected tailor role, got %q", user.Role)
	}
	if user.PasswordHash == "longenough" {
		t.Error("password must be stored hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("longenough")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
	if !user.IsActive {
		t.Error("new users start active")
	}
}

func TestCreateUser_InvalidRole(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	_, err := svc.CreateUser(context.Background(), "ravi", "longenough", "Ravi Kumar", "", "superuser")
	if !errors.Is(err, authdomain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestCreateUser_UsernameTaken(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "asha", "s3cret-pass", true)
	svc := NewAuthService(repo)

	_, err := svc.CreateUser(context.Background(), "asha", "longenough", "Other Asha", "", "employee")
	if !errors.Is(err, authdomain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestGetUser(t *testing.T) {
	repo := newFakeUserRepo()
	seeded := seedUser(t, repo, "asha", "s3cret-pass", true)
	svc := NewAuthService(repo)

	user, err := svc.GetUser(context.Background(), seeded.UserID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "asha" {
		t.Fatalf("expected asha, got %q", user.Username)
	}

	_, err = svc.GetUser(context.Background(), "missing-id")
	if !errors.Is(err, authdomain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
