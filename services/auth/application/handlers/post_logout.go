package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/stitchstock/pkg/auth"
	"github.com/ghuser/stitchstock/pkg/httpx"
	"github.com/ghuser/stitchstock/pkg/logger"
)

// PostLogoutHandler handles POST /auth/logout requests.
type PostLogoutHandler struct {
	store sessions.Store
	log   logger.Logger
}

// NewPostLogoutHandler returns a PostLogoutHandler over the given session store.
func NewPostLogoutHandler(store sessions.Store, log logger.Logger) *PostLogoutHandler {
	return &PostLogoutHandler{store: store, log: log}
}

// Execute destroys the current session.
//
//	@Summary	Log out
//	@Tags		auth
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/auth/logout [post]
func (h *PostLogoutHandler) Execute(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, auth.SessionName)
	if err == nil {
		session.Options.MaxAge = -1 // delete server-side state and the cookie
		if err := session.Save(r, w); err != nil {
			h.log.WarnContext(r.Context(), "session destroy failed", "error", err)
		}
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}
