package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
)

// TransactionFilter narrows ListTransactionsByOwner. Zero values select everything.
type TransactionFilter struct {
	// ContainerIDs keeps transactions with at least one fragment touching a listed container.
	ContainerIDs []string
	// AtOrBefore keeps transactions created at or before the instant.
	AtOrBefore *time.Time
}

// TransactionReader defines read operations for transactions
type TransactionReader interface {
	// ListTransactionsByOwner retrieves the owner's transactions with their
	// fragments, ordered by creation date.
	ListTransactionsByOwner(ctx context.Context, ownerID string, filter TransactionFilter) ([]domain.Transaction, error)
}
