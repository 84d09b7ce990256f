package services

import (
	portsrepo "github.com/dchu15/store_management_app/internal/core/ports/repositories"
	portssvc "github.com/dchu15/store_management_app/internal/core/ports/services"
	"github.com/dchu15/store_management_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Cashflow = NewCashflowService(repos.CashflowRepo)
	container.User = NewUserService(repos.UserRepo)
	container.TokenService = NewTokenService(cfg)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}
