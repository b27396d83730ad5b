package repositories

import (
	"context"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// ListCurrenciesByOwner retrieves every currency of the owner.
	ListCurrenciesByOwner(ctx context.Context, ownerID string) ([]domain.Currency, error)

	// FindCurrencyByID retrieves one currency of the owner.
	FindCurrencyByID(ctx context.Context, ownerID, currencyID string) (*domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// SaveCurrency persists a new currency.
	SaveCurrency(ctx context.Context, currency domain.Currency) error

	// UpdateCurrencyFallback replaces the fallback rate of an existing currency.
	UpdateCurrencyFallback(ctx context.Context, currency domain.Currency) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
// This is a facade for clients that need access to all operations
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
