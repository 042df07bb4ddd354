package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepreciationMethod identifies how an asset is depreciated.
// Only straight-line is supported; assets without a method are never
// picked up by a depreciation run.
type DepreciationMethod string

const DepreciationStraightLine DepreciationMethod = "straight-line"

// Asset represents a fixed asset carried at cost.
// AccumulatedDepreciation and LastDepreciationDate are mutated only by the
// depreciation engine; everything else is set at creation.
type Asset struct {
	AssetID                 string             `json:"assetID"`
	Name                    string             `json:"name"`
	Cost                    decimal.Decimal    `json:"cost"`
	DateReceived            time.Time          `json:"dateReceived"`
	AccountID               string             `json:"accountID"`
	DepreciationMethod      DepreciationMethod `json:"depreciationMethod,omitempty"`
	UsefulLifeYears         int                `json:"usefulLifeYears"`
	SalvageValue            decimal.Decimal    `json:"salvageValue"`
	AccumulatedDepreciation decimal.Decimal    `json:"accumulatedDepreciation"`
	LastDepreciationDate    *time.Time         `json:"lastDepreciationDate,omitempty"`
	CreatedAt               time.Time          `json:"createdAt"`
}

// DepreciationEntry is an immutable audit record linking the expense
// transaction generated by a depreciation run to the asset period it covers.
type DepreciationEntry struct {
	EntryID          string          `json:"entryID"`
	AssetID          string          `json:"assetID"`
	DepreciationDate time.Time       `json:"depreciationDate"`
	Amount           decimal.Decimal `json:"amount"`
	TransactionID    string          `json:"transactionID"`
}
