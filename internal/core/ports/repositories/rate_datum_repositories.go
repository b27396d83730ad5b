package repositories

import (
	"context"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
)

// RateDatumReader defines read operations for rate datums
type RateDatumReader interface {
	// ListRateDatumsByCurrency retrieves every datum whose RefCurrencyID is currencyID.
	ListRateDatumsByCurrency(ctx context.Context, ownerID, currencyID string) ([]domain.RateDatum, error)

	// ListRateDatumsPage retrieves datums of the currency newest first using token-based pagination.
	ListRateDatumsPage(ctx context.Context, ownerID, currencyID string, limit int, nextToken *string) ([]domain.RateDatum, *string, error)
}

// RateDatumWriter defines write operations for rate datums
type RateDatumWriter interface {
	// SaveRateDatum persists a new datum.
	SaveRateDatum(ctx context.Context, datum domain.RateDatum) error
}

// RateDatumRepositoryFacade combines all rate datum repository interfaces
type RateDatumRepositoryFacade interface {
	RateDatumReader
	RateDatumWriter
}
