package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/sessions"

	"github.com/ghuser/stitchstock/pkg/auth"
	"github.com/ghuser/stitchstock/pkg/errhttp"
	"github.com/ghuser/stitchstock/pkg/httpx"
	"github.com/ghuser/stitchstock/pkg/logger"
	pkgvalidator "github.com/ghuser/stitchstock/pkg/validator"
	appsvcs "github.com/ghuser/stitchstock/services/auth/application/services"
	"github.com/ghuser/stitchstock/services/auth/domain/models"
)

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100" example:"admin"`
	Password string `json:"password" validate:"required,min=1,max=255" example:"s3cret"`
} // @name LoginRequest

// UserResponse is the JSON shape of an authenticated user. The password hash
// never appears in responses.
type UserResponse struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"  example:"admin"`
	FullName  string    `json:"full_name" example:"Asha Rao"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role"      example:"admin"`
	CreatedAt time.Time `json:"created_at"`
} // @name UserResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid username or password"`
} // @name AuthErrorResponse

// PostLoginHandler handles POST /auth/login requests.
type PostLoginHandler struct {
	svc   *appsvcs.Services
	store sessions.Store
	log   logger.Logger
}

// NewPostLoginHandler returns a PostLoginHandler backed by the given services
// and session store.
func NewPostLoginHandler(svc *appsvcs.Services, store sessions.Store, log logger.Logger) *PostLoginHandler {
	return &PostLoginHandler{svc: svc, store: store, log: log}
}

// Execute verifies credentials and issues a server-side session.
//
//	@Summary		Log in
//	@Description	Verifies credentials and sets the session cookie
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Credentials"
//	@Success		200		{object}	UserResponse
//	@Failure		401		{object}	AuthErrorResponse
//	@Failure		422		{object}	AuthErrorResponse
//	@Router			/auth/login [post]
func (h *PostLoginHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[LoginRequest](w, r)
	if !ok {
		return
	}

	user, err := h.svc.Auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	session, err := h.store.Get(r, auth.SessionName)
	if err != nil {
		// A tampered cookie yields a fresh session; only storage errors land here.
		h.log.ErrorContext(r.Context(), "session load failed", "error", err)
	}
	session.Values[auth.SessionUserIDKey] = user.UserID
	session.Values[auth.SessionUsernameKey] = user.Username
	session.Values[auth.SessionRoleKey] = string(user.Role)
	if err := session.Save(r, w); err != nil {
		h.log.ErrorContext(r.Context(), "session save failed", "error", err)
		httpx.JSONError(w, http.StatusInternalServerError, "failed to establish session")
		return
	}

	httpx.JSON(w, http.StatusOK, toUserResponse(user))
}

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}
