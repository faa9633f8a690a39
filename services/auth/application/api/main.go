package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/stitchstock/pkg/app"
	"github.com/ghuser/stitchstock/pkg/auth"
	"github.com/ghuser/stitchstock/services/auth/application/handlers"
	appsvcs "github.com/ghuser/stitchstock/services/auth/application/services"
	authmodels "github.com/ghuser/stitchstock/services/auth/domain/models"
)

// PublicRoutes registers the unauthenticated auth endpoints (login).
func PublicRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Post("/auth/login", handlers.NewPostLoginHandler(svcs, a.SessionStore, a.Logger).Execute)
}

// AuthRoutes registers the session-protected auth endpoints.
func AuthRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/logout", handlers.NewPostLogoutHandler(a.SessionStore, a.Logger).Execute)
		r.Get("/me", handlers.NewGetMeHandler(svcs).Execute)
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireRole(a.Logger, string(authmodels.RoleAdmin)))
			r.Post("/users", handlers.NewPostUserHandler(svcs).Execute)
		})
	})
}
