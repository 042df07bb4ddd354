package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepreciationPosting bundles the writes one asset contributes to a
// depreciation run: the asset's advanced depreciation state, the generated
// expense transaction, and the audit entry linking the two. A run's postings
// are persisted together in a single database transaction; either every
// posting lands or none do.
type DepreciationPosting struct {
	AssetID                    string
	NewAccumulatedDepreciation decimal.Decimal
	NewLastDepreciationDate    time.Time
	Transaction                Transaction
	Entry                      DepreciationEntry
}
