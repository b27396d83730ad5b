package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionFragment moves an amount of one currency out of a container and/or
// an amount of a currency into a container. A side is present when its
// container id is set.
type TransactionFragment struct {
	FromAmount      *decimal.Decimal `json:"fromAmount,omitempty"`
	FromContainerID *string          `json:"fromContainerId,omitempty"`
	FromCurrencyID  *string          `json:"fromCurrencyId,omitempty"`
	ToAmount        *decimal.Decimal `json:"toAmount,omitempty"`
	ToContainerID   *string          `json:"toContainerId,omitempty"`
	ToCurrencyID    *string          `json:"toCurrencyId,omitempty"`
}

// HasFrom reports whether the fragment takes value out of a container.
func (f TransactionFragment) HasFrom() bool {
	return f.FromContainerID != nil
}

// HasTo reports whether the fragment puts value into a container.
func (f TransactionFragment) HasTo() bool {
	return f.ToContainerID != nil
}

// Validate checks that every present side is complete and non-negative.
func (f TransactionFragment) Validate() error {
	if !f.HasFrom() && !f.HasTo() {
		return fmt.Errorf("fragment must have a from side, a to side, or both")
	}
	if f.HasFrom() {
		if f.FromAmount == nil || f.FromCurrencyID == nil {
			return fmt.Errorf("from side requires both an amount and a currency")
		}
		if f.FromAmount.IsNegative() {
			return fmt.Errorf("from amount cannot be negative")
		}
	}
	if f.HasTo() {
		if f.ToAmount == nil || f.ToCurrencyID == nil {
			return fmt.Errorf("to side requires both an amount and a currency")
		}
		if f.ToAmount.IsNegative() {
			return fmt.Errorf("to amount cannot be negative")
		}
	}
	return nil
}

// Transaction is an immutable, dated event made of one or more fragments.
type Transaction struct {
	TransactionID               string                `json:"transactionId"`
	OwnerID                     string                `json:"ownerId"`
	Title                       string                `json:"title"`
	Description                 string                `json:"description"`
	CreationDate                time.Time             `json:"creationDate"`
	TxnTypeID                   *string               `json:"txnTypeId,omitempty"`
	ExcludedFromIncomesExpenses bool                  `json:"excludedFromIncomesExpenses"`
	Fragments                   []TransactionFragment `json:"fragments"`
	AuditFields
}

// Validate checks the transaction and all of its fragments.
func (t Transaction) Validate() error {
	if t.OwnerID == "" {
		return fmt.Errorf("transaction %s has no owner", t.TransactionID)
	}
	if len(t.Fragments) == 0 {
		return fmt.Errorf("transaction %s has no fragments", t.TransactionID)
	}
	for i, f := range t.Fragments {
		if err := f.Validate(); err != nil {
			return fmt.Errorf("transaction %s fragment %d: %w", t.TransactionID, i, err)
		}
	}
	return nil
}

// TouchesAny reports whether any fragment moves value out of or into one of
// the given containers.
func (t Transaction) TouchesAny(containerIDs map[string]struct{}) bool {
	for _, f := range t.Fragments {
		if f.HasFrom() {
			if _, ok := containerIDs[*f.FromContainerID]; ok {
				return true
			}
		}
		if f.HasTo() {
			if _, ok := containerIDs[*f.ToContainerID]; ok {
				return true
			}
		}
	}
	return false
}
