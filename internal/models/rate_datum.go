package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateDatum is a row of the currency_rate_datums table.
type RateDatum struct {
	RateDatumID         string          `db:"rate_datum_id"`
	OwnerID             string          `db:"owner_id"`
	Amount              decimal.Decimal `db:"amount"`
	RefCurrencyID       string          `db:"ref_currency_id"`
	RefAmountCurrencyID string          `db:"ref_amount_currency_id"`
	Date                time.Time       `db:"date"`
	AuditFields
}
