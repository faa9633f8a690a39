// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/stitchstock/pkg/httpx"
	authdomain "github.com/ghuser/stitchstock/services/auth/domain"
	invdomain "github.com/ghuser/stitchstock/services/inventory/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors (storage
// failures surface this way, unmasked in the body).
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)

	// InsufficientStock carries current/requested quantities the client
	// needs for display; keep the original's response shape.
	var stockErr *invdomain.InsufficientStockError
	if errors.As(err, &stockErr) {
		httpx.JSON(w, status, map[string]any{
			"error":            "Insufficient stock",
			"current_quantity": stockErr.Current,
			"requested":        stockErr.Requested,
		})
		return
	}

	httpx.JSONError(w, status, err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, invdomain.ErrProductNotFound),
		errors.Is(err, authdomain.ErrUserNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, invdomain.ErrProductExists),
		errors.Is(err, authdomain.ErrUsernameTaken):
		return http.StatusConflict // 409
	case errors.Is(err, invdomain.ErrDecode),
		errors.Is(err, invdomain.ErrInvalidAction),
		errors.Is(err, invdomain.ErrInsufficientStock):
		return http.StatusBadRequest // 400
	case errors.Is(err, invdomain.ErrValidation),
		errors.Is(err, invdomain.ErrInvariantViolation),
		errors.Is(err, authdomain.ErrInvalidRole):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, authdomain.ErrInvalidCredentials),
		errors.Is(err, authdomain.ErrUserInactive):
		return http.StatusUnauthorized // 401
	default:
		return http.StatusInternalServerError // 500
	}
}
