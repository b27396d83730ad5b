package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager scopes multi-statement reads and writes to one database
// transaction.
type TransactionManager interface {
	// BeginSnapshot starts a read-only transaction whose statements all see
	// the same snapshot.
	BeginSnapshot(ctx context.Context) (pgx.Tx, error)

	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback is a no-op on a transaction that already finished.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
