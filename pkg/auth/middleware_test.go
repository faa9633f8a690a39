package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"

	"github.com/ghuser/stitchstock/pkg/config"
	"github.com/ghuser/stitchstock/pkg/logger"
)

// newTestStore returns a gorilla CookieStore (no Redis required) for unit tests.
// In production the RedisStore is used; the sessions.Store interface is identical.
func newTestStore() sessions.Store {
	return sessions.NewCookieStore(
		[]byte("test-auth-key-must-be-32-bytes!!"),
		[]byte("test-enc-key-must-be-32-bytes!!!"),
	)
}

// newTestLogger creates a logger that discards output.
func newTestLogger() logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}

// requestWithSession builds an *http.Request that carries a valid session
// cookie containing the given principal.
func requestWithSession(t *testing.T, store sessions.Store, p Principal) *http.Request {
	t.Helper()

	// Write the session cookie into a recorder, then copy it to the real request.
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/inventory/scan", nil)

	session, err := store.Get(r, SessionName)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	session.Values[SessionUserIDKey] = p.UserID
	session.Values[SessionUsernameKey] = p.Username
	session.Values[SessionRoleKey] = p.Role
	if err := session.Save(r, w); err != nil {
		t.Fatalf("save session: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/inventory/scan", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestRequireAuth_ValidSession(t *testing.T) {
	store := newTestStore()
	log := newTestLogger()
	principal := Principal{UserID: "u-1", Username: "asha", Role: "employee"}

	var captured Principal
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = PrincipalFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	r := requestWithSession(t, store, principal)
	w := httptest.NewRecorder()
	RequireAuth(store, log)(next).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if captured != principal {
		t.Fatalf("expected principal %+v in context, got %+v", principal, captured)
	}
}

func TestRequireAuth_MissingCookie(t *testing.T) {
	store := newTestStore()
	log := newTestLogger()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be called")
	})

	r := httptest.NewRequest(http.MethodPost, "/api/inventory/scan", nil)
	w := httptest.NewRecorder()
	RequireAuth(store, log)(next).ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuth_SessionMissingUserID(t *testing.T) {
	store := newTestStore()
	log := newTestLogger()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be called")
	})

	// Build a session with no user_id value.
	writeReq := httptest.NewRequest(http.MethodPost, "/api/inventory/scan", nil)
	w1 := httptest.NewRecorder()
	session, _ := store.Get(writeReq, SessionName)
	session.Values[SessionUsernameKey] = "asha"
	_ = session.Save(writeReq, w1)

	r := httptest.NewRequest(http.MethodPost, "/api/inventory/scan", nil)
	for _, c := range w1.Result().Cookies() {
		r.AddCookie(c)
	}

	w := httptest.NewRecorder()
	RequireAuth(store, log)(next).ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireRole(t *testing.T) {
	log := newTestLogger()
	store := newTestStore()

	tests := []struct {
		name       string
		role       string
		allowed    []string
		wantStatus int
	}{
		{"admin allowed", "admin", []string{"admin"}, http.StatusOK},
		{"employee denied", "employee", []string{"admin"}, http.StatusForbidden},
		{"tailor in multi-role list", "tailor", []string{"admin", "tailor"}, http.StatusOK},
		{"empty role denied", "", []string{"admin"}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			handler := RequireAuth(store, log)(RequireRole(log, tt.allowed...)(next))

			r := requestWithSession(t, store, Principal{UserID: "u-1", Username: "x", Role: tt.role})
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestRequireRole_NoPrincipal(t *testing.T) {
	log := newTestLogger()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be called")
	})

	// Mounted without RequireAuth: no principal in context.
	r := httptest.NewRequest(http.MethodPost, "/api/auth/users", nil)
	w := httptest.NewRecorder()
	RequireRole(log, "admin")(next).ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
