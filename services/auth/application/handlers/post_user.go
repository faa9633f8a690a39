package handlers

import (
	"net/http"

	"github.com/ghuser/stitchstock/pkg/errhttp"
	"github.com/ghuser/stitchstock/pkg/httpx"
	pkgvalidator "github.com/ghuser/stitchstock/pkg/validator"
	appsvcs "github.com/ghuser/stitchstock/services/auth/application/services"
)

// CreateUserRequest is the request body for POST /auth/users.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100,alphanum" example:"asha"`
	Password string `json:"password" validate:"required,min=8,max=255"`
	FullName string `json:"full_name" validate:"required,min=1,max=255" example:"Asha Rao"`
	Email    string `json:"email" validate:"omitempty,email"`
	Role     string `json:"role" validate:"required,oneof=admin employee tailor" example:"employee"`
} // @name CreateUserRequest

// PostUserHandler handles POST /auth/users requests (admin only).
type PostUserHandler struct {
	svc *appsvcs.Services
}

// NewPostUserHandler returns a PostUserHandler backed by the given services.
func NewPostUserHandler(svc *appsvcs.Services) *PostUserHandler {
	return &PostUserHandler{svc: svc}
}

// Execute creates a new user account.
//
//	@Summary		Create user
//	@Description	Registers an account; restricted to admins
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateUserRequest	true	"User creation request"
//	@Success		201		{object}	UserResponse
//	@Failure		401		{object}	AuthErrorResponse
//	@Failure		403		{object}	AuthErrorResponse
//	@Failure		409		{object}	AuthErrorResponse
//	@Failure		422		{object}	AuthErrorResponse
//	@Router			/auth/users [post]
func (h *PostUserHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateUserRequest](w, r)
	if !ok {
		return
	}

	user, err := h.svc.Auth.CreateUser(r.Context(), req.Username, req.Password, req.FullName, req.Email, req.Role)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toUserResponse(user))
}
