package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table. Fragments are loaded
// separately and attached by TransactionID.
type Transaction struct {
	TransactionID               string    `db:"transaction_id"`
	OwnerID                     string    `db:"owner_id"`
	Title                       string    `db:"title"`
	Description                 string    `db:"description"`
	CreationDate                time.Time `db:"creation_date"`
	TxnTypeID                   *string   `db:"txn_type_id"`
	ExcludedFromIncomesExpenses bool      `db:"excluded_from_incomes_expenses"`
	AuditFields
}

// TransactionFragment is a row of the transaction_fragments table. Position
// keeps the fragments of one transaction in their recorded order.
type TransactionFragment struct {
	TransactionID   string              `db:"transaction_id"`
	Position        int                 `db:"position"`
	FromAmount      decimal.NullDecimal `db:"from_amount"`
	FromContainerID *string             `db:"from_container_id"`
	FromCurrencyID  *string             `db:"from_currency_id"`
	ToAmount        decimal.NullDecimal `db:"to_amount"`
	ToContainerID   *string             `db:"to_container_id"`
	ToCurrencyID    *string             `db:"to_currency_id"`
}
