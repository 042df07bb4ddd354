package models

import "time"

// Account represents a row in the accounts table.
type Account struct {
	AccountID string    `db:"account_id"`
	Name      string    `db:"name"`
	Type      string    `db:"account_type"`
	Code      string    `db:"code"`  // Nullable
	Class     string    `db:"class"` // Nullable classification tag
	CreatedAt time.Time `db:"created_at"`
}
