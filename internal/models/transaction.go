package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a row in the transactions table. Amount is always
// positive; the income/expense direction lives in Type.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	Type          string          `db:"transaction_type"`
	Amount        decimal.Decimal `db:"amount"`
	Description   string          `db:"description"`
	Date          time.Time       `db:"transaction_date"`
	Category      string          `db:"category"` // Nullable
	AccountID     string          `db:"account_id"`
	CreatedAt     time.Time       `db:"created_at"`
}
