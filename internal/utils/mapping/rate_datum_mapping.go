package mapping

import (
	"github.com/SscSPs/networth_tracker/internal/core/domain"
	"github.com/SscSPs/networth_tracker/internal/models"
)

// ToModelRateDatum converts a domain RateDatum to a model RateDatum
func ToModelRateDatum(d domain.RateDatum) models.RateDatum {
	return models.RateDatum{
		RateDatumID:         d.RateDatumID,
		OwnerID:             d.OwnerID,
		Amount:              d.Amount,
		RefCurrencyID:       d.RefCurrencyID,
		RefAmountCurrencyID: d.RefAmountCurrencyID,
		Date:                d.Date,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRateDatum converts a model RateDatum to a domain RateDatum
func ToDomainRateDatum(m models.RateDatum) domain.RateDatum {
	return domain.RateDatum{
		RateDatumID:         m.RateDatumID,
		OwnerID:             m.OwnerID,
		Amount:              m.Amount,
		RefCurrencyID:       m.RefCurrencyID,
		RefAmountCurrencyID: m.RefAmountCurrencyID,
		Date:                m.Date,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRateDatumSlice converts a slice of model RateDatums to a slice of domain RateDatums
func ToDomainRateDatumSlice(ms []models.RateDatum) []domain.RateDatum {
	ds := make([]domain.RateDatum, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRateDatum(m)
	}
	return ds
}
