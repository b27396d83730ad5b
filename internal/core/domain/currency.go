package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency is a user-owned unit of value. Exactly one currency per owner is the
// base currency, with an implicit rate of 1. Every other currency declares a
// static fallback: 1 unit = FallbackRateAmount units of FallbackRateCurrencyID.
type Currency struct {
	CurrencyID             string           `json:"currencyId"`
	OwnerID                string           `json:"ownerId"`
	Name                   string           `json:"name"`
	Ticker                 string           `json:"ticker"`
	IsBase                 bool             `json:"isBase"`
	FallbackRateAmount     *decimal.Decimal `json:"fallbackRateAmount,omitempty"`
	FallbackRateCurrencyID *string          `json:"fallbackRateCurrencyId,omitempty"`
	LastRateCronUpdateTime *time.Time       `json:"lastRateCronUpdateTime,omitempty"`
	AuditFields
}

// HasFallback reports whether the currency declares a complete static fallback.
func (c Currency) HasFallback() bool {
	return c.FallbackRateAmount != nil && c.FallbackRateCurrencyID != nil
}
