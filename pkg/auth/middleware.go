package auth

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/stitchstock/pkg/httpx"
	"github.com/ghuser/stitchstock/pkg/logger"
)

// SessionName is the cookie name for the server-side session.
const SessionName = "stitchstock_session"

// Session value keys. The session carries only the principal's identity;
// everything else is looked up server-side.
const (
	SessionUserIDKey   = "user_id"
	SessionUsernameKey = "username"
	SessionRoleKey     = "role"
)

// RequireAuth is a chi middleware that enforces authentication via session
// cookies. It reads the session, extracts the principal, and injects it into
// the request context. Returns 401 Unauthorized if the session is missing,
// invalid, or lacks a user id.
//
// After this middleware, handlers can safely call auth.PrincipalFromCtx(r.Context()).
func RequireAuth(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, SessionName)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			userID, _ := session.Values[SessionUserIDKey].(string)
			if userID == "" {
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			username, _ := session.Values[SessionUsernameKey].(string)
			role, _ := session.Values[SessionRoleKey].(string)

			ctx := WithPrincipal(r.Context(), Principal{
				UserID:   userID,
				Username: username,
				Role:     role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route group to principals holding one of the given
// roles. Must be mounted after RequireAuth.
func RequireRole(log logger.Logger, roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, err := PrincipalFromCtx(r.Context())
			if err != nil {
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			if _, ok := allowed[p.Role]; !ok {
				log.WarnContext(r.Context(), "role denied", "role", p.Role, "path", r.URL.Path)
				httpx.JSONError(w, http.StatusForbidden, "insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
