package mapping

import (
	"fmt"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
	"github.com/SscSPs/networth_tracker/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction and
// its fragments, numbered in order.
func ToModelTransaction(d domain.Transaction) (models.Transaction, []models.TransactionFragment) {
	m := models.Transaction{
		TransactionID:               d.TransactionID,
		OwnerID:                     d.OwnerID,
		Title:                       d.Title,
		Description:                 d.Description,
		CreationDate:                d.CreationDate,
		TxnTypeID:                   d.TxnTypeID,
		ExcludedFromIncomesExpenses: d.ExcludedFromIncomesExpenses,
		AuditFields:                 ToModelAuditFields(d.AuditFields),
	}
	frags := make([]models.TransactionFragment, len(d.Fragments))
	for i, f := range d.Fragments {
		frags[i] = models.TransactionFragment{
			TransactionID:   d.TransactionID,
			Position:        i,
			FromAmount:      toNullDecimal(f.FromAmount),
			FromContainerID: f.FromContainerID,
			FromCurrencyID:  f.FromCurrencyID,
			ToAmount:        toNullDecimal(f.ToAmount),
			ToContainerID:   f.ToContainerID,
			ToCurrencyID:    f.ToCurrencyID,
		}
	}
	return m, frags
}

// ToDomainTransaction converts a model Transaction and its fragments to a
// domain Transaction. Fragments are expected in position order. Rows that do
// not form a valid transaction are rejected.
func ToDomainTransaction(m models.Transaction, frags []models.TransactionFragment) (domain.Transaction, error) {
	d := domain.Transaction{
		TransactionID:               m.TransactionID,
		OwnerID:                     m.OwnerID,
		Title:                       m.Title,
		Description:                 m.Description,
		CreationDate:                m.CreationDate,
		TxnTypeID:                   m.TxnTypeID,
		ExcludedFromIncomesExpenses: m.ExcludedFromIncomesExpenses,
		Fragments:                   make([]domain.TransactionFragment, len(frags)),
		AuditFields:                 ToDomainAuditFields(m.AuditFields),
	}
	for i, f := range frags {
		d.Fragments[i] = ToDomainTransactionFragment(f)
	}
	if err := d.Validate(); err != nil {
		return domain.Transaction{}, fmt.Errorf("stored transaction is malformed: %w", err)
	}
	return d, nil
}

// ToDomainTransactionFragment converts a model fragment to a domain fragment
func ToDomainTransactionFragment(m models.TransactionFragment) domain.TransactionFragment {
	return domain.TransactionFragment{
		FromAmount:      fromNullDecimal(m.FromAmount),
		FromContainerID: m.FromContainerID,
		FromCurrencyID:  m.FromCurrencyID,
		ToAmount:        fromNullDecimal(m.ToAmount),
		ToContainerID:   m.ToContainerID,
		ToCurrencyID:    m.ToCurrencyID,
	}
}
