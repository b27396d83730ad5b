package mapping

import (
	"github.com/SscSPs/networth_tracker/internal/core/domain"
	"github.com/SscSPs/networth_tracker/internal/models"
)

// ToModelCurrency converts a domain Currency to a model Currency
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		CurrencyID:             d.CurrencyID,
		OwnerID:                d.OwnerID,
		Name:                   d.Name,
		Ticker:                 d.Ticker,
		IsBase:                 d.IsBase,
		FallbackRateAmount:     toNullDecimal(d.FallbackRateAmount),
		FallbackRateCurrencyID: d.FallbackRateCurrencyID,
		LastRateCronUpdateTime: d.LastRateCronUpdateTime,
		AuditFields:            ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyID:             m.CurrencyID,
		OwnerID:                m.OwnerID,
		Name:                   m.Name,
		Ticker:                 m.Ticker,
		IsBase:                 m.IsBase,
		FallbackRateAmount:     fromNullDecimal(m.FallbackRateAmount),
		FallbackRateCurrencyID: m.FallbackRateCurrencyID,
		LastRateCronUpdateTime: m.LastRateCronUpdateTime,
		AuditFields:            ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCurrencySlice converts a slice of model Currencies to a slice of domain Currencies
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}
