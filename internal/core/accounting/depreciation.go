package accounting

import (
	"fmt"
	"time"

	"github.com/quantilytix/qbeta-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

var twelve = decimal.NewFromInt(12)

// DepreciationPeriod is the outcome of scheduling one asset for a
// depreciation run. When Skip is true the asset requires no mutation and no
// entry (already fully depreciated, or no whole month has elapsed).
type DepreciationPeriod struct {
	Start  time.Time
	End    time.Time
	Months int
	Amount decimal.Decimal
	Skip   bool
}

// MonthsInPeriod counts the distinct (year, month) pairs from start's month
// through end's month inclusive. A partial month counts as a full month, so
// a period starting and ending within the same month counts as 1. This is
// the straight-line approximation the ledger uses; it is deliberately not a
// day-weighted calculation.
func MonthsInPeriod(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	years := end.Year() - start.Year()
	months := int(end.Month()) - int(start.Month())
	return years*12 + months + 1
}

// MonthlyDepreciation returns (cost - salvage) / usefulLifeYears / 12.
func MonthlyDepreciation(cost, salvage decimal.Decimal, usefulLifeYears int) (decimal.Decimal, error) {
	if usefulLifeYears <= 0 {
		return decimal.Zero, fmt.Errorf("useful life must be positive, got %d years", usefulLifeYears)
	}
	base := cost.Sub(salvage)
	return base.Div(decimal.NewFromInt(int64(usefulLifeYears))).Div(twelve), nil
}

// ScheduleDepreciation computes the depreciation an asset accrues from the
// day after its last depreciation date (or its received date, if never
// depreciated) through asOf, clamped to the end of its useful life.
//
// The returned period's End is the date to record as the asset's new
// last-depreciation date when the run persists.
func ScheduleDepreciation(asset domain.Asset, asOf time.Time) (DepreciationPeriod, error) {
	skip := DepreciationPeriod{Skip: true}

	start := asset.DateReceived
	if asset.LastDepreciationDate != nil {
		start = asset.LastDepreciationDate.AddDate(0, 0, 1)
	}
	if start.Before(asset.DateReceived) {
		start = asset.DateReceived
	}

	usefulLifeEnd := asset.DateReceived.AddDate(asset.UsefulLifeYears, 0, 0)
	if !start.Before(usefulLifeEnd) {
		// Fully depreciated.
		return skip, nil
	}

	end := asOf
	if end.After(usefulLifeEnd) {
		end = usefulLifeEnd
	}
	if start.After(end) {
		return skip, nil
	}

	monthly, err := MonthlyDepreciation(asset.Cost, asset.SalvageValue, asset.UsefulLifeYears)
	if err != nil {
		return skip, fmt.Errorf("asset %s: %w", asset.AssetID, err)
	}

	months := MonthsInPeriod(start, end)
	amount := monthly.Mul(decimal.NewFromInt(int64(months)))
	if !amount.IsPositive() {
		// Zero-value entries are never recorded.
		return skip, nil
	}

	return DepreciationPeriod{
		Start:  start,
		End:    end,
		Months: months,
		Amount: amount,
	}, nil
}
