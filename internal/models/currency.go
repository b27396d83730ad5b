package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency is a row of the currencies table.
type Currency struct {
	CurrencyID             string              `db:"currency_id"`
	OwnerID                string              `db:"owner_id"`
	Name                   string              `db:"name"`
	Ticker                 string              `db:"ticker"`
	IsBase                 bool                `db:"is_base"`
	FallbackRateAmount     decimal.NullDecimal `db:"fallback_rate_amount"`
	FallbackRateCurrencyID *string             `db:"fallback_rate_currency_id"`
	LastRateCronUpdateTime *time.Time          `db:"last_rate_cron_update_time"`
	AuditFields
}
