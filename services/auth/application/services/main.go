package services

import (
	"github.com/ghuser/stitchstock/pkg/app"
	"github.com/ghuser/stitchstock/services/auth/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Auth *AuthService
}

// New wires auth application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	return &Services{
		Auth: NewAuthService(postgres.NewUserRepository(a.Db)),
	}
}
