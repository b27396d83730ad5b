package services

import (
	"context"
	"time"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
	"github.com/SscSPs/networth_tracker/internal/dto"
	"github.com/shopspring/decimal"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// ListCurrencies retrieves every currency of the owner.
	ListCurrencies(ctx context.Context, ownerID string) ([]domain.Currency, error)
}

// CurrencyWriterSvc defines write operations for currency data
type CurrencyWriterSvc interface {
	// CreateCurrency persists a new currency.
	CreateCurrency(ctx context.Context, ownerID string, req dto.CreateCurrencyRequest) (*domain.Currency, error)

	// UpdateCurrencyFallback replaces the static fallback rate of a non-base currency.
	UpdateCurrencyFallback(ctx context.Context, ownerID, currencyID string, req dto.UpdateCurrencyFallbackRequest) (*domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}

// CurrencyRateSvc resolves currency rates at arbitrary instants.
type CurrencyRateSvc interface {
	// RateToBase returns how many base units one unit of the currency is worth at the instant.
	RateToBase(ctx context.Context, ownerID, currencyID string, at time.Time) (decimal.Decimal, error)

	// CurrencyToCurrencyRate returns how many units of to one unit of from is worth at the instant.
	CurrencyToCurrencyRate(ctx context.Context, ownerID, from, to string, at time.Time) (decimal.Decimal, error)

	// RateHistory samples RateToBase at the query's instants.
	RateHistory(ctx context.Context, ownerID, currencyID string, query domain.HistoryQuery) ([]domain.RateSample, error)
}

// RateDatumReaderSvc defines read operations for rate datums
type RateDatumReaderSvc interface {
	// ListRateDatums retrieves one page of the currency's datums, newest first.
	ListRateDatums(ctx context.Context, ownerID, currencyID string, limit int, nextToken *string) ([]domain.RateDatum, *string, error)

	// NearestRateDatums retrieves up to two datums of the currency closest to at, nearest first.
	NearestRateDatums(ctx context.Context, ownerID, currencyID string, at time.Time) ([]domain.RateDatum, error)
}

// RateDatumWriterSvc defines write operations for rate datums
type RateDatumWriterSvc interface {
	// CreateRateDatum records a new rate observation.
	CreateRateDatum(ctx context.Context, ownerID string, req dto.CreateRateDatumRequest) (*domain.RateDatum, error)
}

// RateDatumSvcFacade combines all rate datum service interfaces
type RateDatumSvcFacade interface {
	RateDatumReaderSvc
	RateDatumWriterSvc
}
