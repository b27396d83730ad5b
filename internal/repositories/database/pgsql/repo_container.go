package pgsql

import (
	portsrepo "github.com/SscSPs/networth_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:    newPgxCurrencyRepository(dbPool),
		RateDatumRepo:   newPgxRateDatumRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		ContainerRepo:   newPgxContainerRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
	}
}
