package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asset represents a row in the assets table.
type Asset struct {
	AssetID                 string          `db:"asset_id"`
	Name                    string          `db:"name"`
	Cost                    decimal.Decimal `db:"cost"`
	DateReceived            time.Time       `db:"date_received"`
	AccountID               string          `db:"account_id"`
	DepreciationMethod      string          `db:"depreciation_method"`
	UsefulLifeYears         int             `db:"useful_life_years"`
	SalvageValue            decimal.Decimal `db:"salvage_value"`
	AccumulatedDepreciation decimal.Decimal `db:"accumulated_depreciation"`
	LastDepreciationDate    *time.Time      `db:"last_depreciation_date"` // Nullable
	CreatedAt               time.Time       `db:"created_at"`
}

// DepreciationEntry represents a row in the depreciation_entries table,
// linking a posted depreciation amount to the asset and the expense
// transaction it produced.
type DepreciationEntry struct {
	EntryID          string          `db:"entry_id"`
	AssetID          string          `db:"asset_id"`
	DepreciationDate time.Time       `db:"depreciation_date"`
	Amount           decimal.Decimal `db:"amount"`
	TransactionID    string          `db:"transaction_id"`
}
