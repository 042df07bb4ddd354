package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of a single-sided cash movement.
// The ledger does not model full double-entry journal lines; the transaction
// type stands in for debit/credit polarity (see accounting.NormalBalanceRule).
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// Transaction represents a single-sided cash movement tagged with a category.
// The category is used both for account-balance attribution and for
// income/expense statement line grouping. Amount is always positive;
// direction is carried by Type.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
	Category      string          `json:"category"`
	AccountID     string          `json:"accountID"`
	CreatedAt     time.Time       `json:"createdAt"`
}
