package handlers

import (
	"net/http"

	"github.com/ghuser/stitchstock/pkg/auth"
	"github.com/ghuser/stitchstock/pkg/errhttp"
	"github.com/ghuser/stitchstock/pkg/httpx"
	appsvcs "github.com/ghuser/stitchstock/services/auth/application/services"
)

// GetMeHandler handles GET /auth/me requests.
type GetMeHandler struct {
	svc *appsvcs.Services
}

// NewGetMeHandler returns a GetMeHandler backed by the given services.
func NewGetMeHandler(svc *appsvcs.Services) *GetMeHandler {
	return &GetMeHandler{svc: svc}
}

// Execute returns the authenticated user's account.
//
//	@Summary	Current user
//	@Tags		auth
//	@Produce	json
//	@Success	200	{object}	UserResponse
//	@Failure	401	{object}	AuthErrorResponse
//	@Router		/auth/me [get]
func (h *GetMeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	p, err := auth.PrincipalFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	user, err := h.svc.Auth.GetUser(r.Context(), p.UserID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toUserResponse(user))
}
