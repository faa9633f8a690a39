package auth

import (
	"context"
	"errors"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const principalKey contextKey = "principal"

// Principal identifies the authenticated user for the duration of a request.
// The inventory core only ever sees UserID as an opaque actor string; Role is
// used by role-gated routes.
type Principal struct {
	UserID   string
	Username string
	Role     string
}

// ErrNoPrincipal is returned when no Principal exists in the request context.
// Handlers should return 401 when this error occurs.
var ErrNoPrincipal = errors.New("no authenticated principal in context")

// PrincipalFromCtx extracts the authenticated principal from the request
// context. Returns ErrNoPrincipal for unauthenticated requests.
func PrincipalFromCtx(ctx context.Context) (Principal, error) {
	p, ok := ctx.Value(principalKey).(Principal)
	if !ok || p.UserID == "" {
		return Principal{}, ErrNoPrincipal
	}
	return p, nil
}

// WithPrincipal returns a new context with the given principal attached.
// Used by authentication middleware after validating the session.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}
