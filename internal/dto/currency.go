package dto

import (
	"time"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
)

// CreateCurrencyRequest defines the data needed to create a new currency.
// Non-base currencies must name a fallback rate.
type CreateCurrencyRequest struct {
	Name                   string  `json:"name" binding:"required,max=128"`
	Ticker                 string  `json:"ticker" binding:"required,max=16"`
	IsBase                 bool    `json:"isBase"`
	FallbackRateAmount     *string `json:"fallbackRateAmount" binding:"omitempty,decimal_string"`
	FallbackRateCurrencyID *string `json:"fallbackRateCurrencyId" binding:"omitempty,uuid"`
}

// UpdateCurrencyFallbackRequest replaces the static fallback rate of a currency.
type UpdateCurrencyFallbackRequest struct {
	FallbackRateAmount     string `json:"fallbackRateAmount" binding:"required,decimal_string"`
	FallbackRateCurrencyID string `json:"fallbackRateCurrencyId" binding:"required,uuid"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyID             string     `json:"currencyId"`
	Name                   string     `json:"name"`
	Ticker                 string     `json:"ticker"`
	IsBase                 bool       `json:"isBase"`
	FallbackRateAmount     *string    `json:"fallbackRateAmount,omitempty"`
	FallbackRateCurrencyID *string    `json:"fallbackRateCurrencyId,omitempty"`
	LastRateCronUpdateTime *time.Time `json:"lastRateCronUpdateTime,omitempty"`
	CreatedAt              time.Time  `json:"createdAt"`
	LastUpdatedAt          time.Time  `json:"lastUpdatedAt"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	res := CurrencyResponse{
		CurrencyID:             curr.CurrencyID,
		Name:                   curr.Name,
		Ticker:                 curr.Ticker,
		IsBase:                 curr.IsBase,
		FallbackRateCurrencyID: curr.FallbackRateCurrencyID,
		LastRateCronUpdateTime: curr.LastRateCronUpdateTime,
		CreatedAt:              curr.CreatedAt,
		LastUpdatedAt:          curr.LastUpdatedAt,
	}
	if curr.FallbackRateAmount != nil {
		amount := curr.FallbackRateAmount.String()
		res.FallbackRateAmount = &amount
	}
	return res
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}

// RateToBaseResponse is the rate of one currency to the owner's base currency.
type RateToBaseResponse struct {
	CurrencyID string `json:"currencyId"`
	Date       string `json:"date"`
	Rate       string `json:"rate"`
}

// CurrencyRateResponse is the number of To units one From unit is worth.
type CurrencyRateResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
	Date string `json:"date"`
	Rate string `json:"rate"`
}

// CurrencyRateQuery holds the query parameters of the currency-to-currency rate endpoint.
type CurrencyRateQuery struct {
	From string  `form:"from" binding:"required"`
	To   string  `form:"to" binding:"required"`
	Date *string `form:"date" binding:"omitempty,epoch_ms"`
}

// DateQuery optionally pins the instant of a rate lookup.
type DateQuery struct {
	Date *string `form:"date" binding:"omitempty,epoch_ms"`
}
