package pgsql

import (
	portsrepo "github.com/dchu15/store_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	cashflowRepo := newPgxCashflowRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CashflowRepo: cashflowRepo,
		UserRepo:     userRepo,
	}
}
