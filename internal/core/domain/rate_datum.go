package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateDatum is one observed rate: at Date, 1 unit of RefCurrencyID is worth
// Amount units of RefAmountCurrencyID. Datums are never updated, only
// superseded by later ones.
type RateDatum struct {
	RateDatumID         string          `json:"rateDatumId"`
	OwnerID             string          `json:"ownerId"`
	Amount              decimal.Decimal `json:"amount"`
	RefCurrencyID       string          `json:"refCurrencyId"`
	RefAmountCurrencyID string          `json:"refAmountCurrencyId"`
	Date                time.Time       `json:"date"`
	AuditFields
}

// CurrencyRateSource is a fetch recipe for an external rate feed. The fetcher
// that executes it lives outside this service; here it is only stored.
type CurrencyRateSource struct {
	RateSourceID        string     `json:"rateSourceId"`
	OwnerID             string     `json:"ownerId"`
	Hostname            string     `json:"hostname"`
	Path                string     `json:"path"`
	JSONQueryString     string     `json:"jsonQueryString"`
	RefCurrencyID       string     `json:"refCurrencyId"`
	RefAmountCurrencyID string     `json:"refAmountCurrencyId"`
	LastExecuteTime     *time.Time `json:"lastExecuteTime,omitempty"`
}
