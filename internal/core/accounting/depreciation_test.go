package accounting_test

import (
	"testing"
	"time"

	"github.com/quantilytix/qbeta-backend/internal/core/accounting"
	"github.com/quantilytix/qbeta-backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthsInPeriod(t *testing.T) {
	testCases := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{"same day", date(2024, time.March, 10), date(2024, time.March, 10), 1},
		{"same month partial", date(2024, time.March, 1), date(2024, time.March, 31), 1},
		{"worked example Jan through Apr", date(2024, time.January, 15), date(2024, time.April, 15), 4},
		{"across year boundary", date(2023, time.December, 20), date(2024, time.January, 5), 2},
		{"full year", date(2024, time.January, 1), date(2024, time.December, 31), 12},
		{"end before start", date(2024, time.May, 1), date(2024, time.April, 30), 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, accounting.MonthsInPeriod(tc.start, tc.end))
		})
	}
}

func TestMonthlyDepreciation(t *testing.T) {
	monthly, err := accounting.MonthlyDepreciation(decimal.NewFromInt(12000), decimal.Zero, 5)
	require.NoError(t, err)
	assert.True(t, monthly.Equal(decimal.NewFromInt(200)), "got %s", monthly)

	_, err = accounting.MonthlyDepreciation(decimal.NewFromInt(12000), decimal.Zero, 0)
	assert.Error(t, err)
}

func TestScheduleDepreciation_WorkedExample(t *testing.T) {
	asset := domain.Asset{
		AssetID:         "asset-1",
		Cost:            decimal.NewFromInt(12000),
		SalvageValue:    decimal.Zero,
		UsefulLifeYears: 5,
		DateReceived:    date(2024, time.January, 15),
	}

	period, err := accounting.ScheduleDepreciation(asset, date(2024, time.April, 15))
	require.NoError(t, err)
	require.False(t, period.Skip)

	assert.Equal(t, 4, period.Months)
	assert.True(t, period.Amount.Equal(decimal.NewFromInt(800)), "got %s", period.Amount)
	assert.Equal(t, date(2024, time.January, 15), period.Start)
	assert.Equal(t, date(2024, time.April, 15), period.End)
}

func TestScheduleDepreciation_ResumesAfterLastRun(t *testing.T) {
	last := date(2024, time.April, 15)
	asset := domain.Asset{
		AssetID:              "asset-1",
		Cost:                 decimal.NewFromInt(12000),
		SalvageValue:         decimal.Zero,
		UsefulLifeYears:      5,
		DateReceived:         date(2024, time.January, 15),
		LastDepreciationDate: &last,
	}

	period, err := accounting.ScheduleDepreciation(asset, date(2024, time.June, 30))
	require.NoError(t, err)
	require.False(t, period.Skip)

	// Resumes the day after the last depreciation date: Apr 16 through Jun 30
	// spans the Apr, May and Jun month buckets.
	assert.Equal(t, date(2024, time.April, 16), period.Start)
	assert.Equal(t, 3, period.Months)
	assert.True(t, period.Amount.Equal(decimal.NewFromInt(600)), "got %s", period.Amount)
}

func TestScheduleDepreciation_ClampsToUsefulLife(t *testing.T) {
	asset := domain.Asset{
		AssetID:         "asset-1",
		Cost:            decimal.NewFromInt(10800),
		SalvageValue:    decimal.Zero,
		UsefulLifeYears: 3,
		DateReceived:    date(2020, time.January, 1),
	}

	period, err := accounting.ScheduleDepreciation(asset, date(2030, time.January, 1))
	require.NoError(t, err)
	require.False(t, period.Skip)

	assert.Equal(t, date(2023, time.January, 1), period.End, "period must not run past the useful life end")

	// A single run over the whole life recovers cost minus salvage, within one
	// month's worth of the month-bucket approximation.
	depreciableBase := decimal.NewFromInt(10800)
	monthly := decimal.NewFromInt(300)
	diff := period.Amount.Sub(depreciableBase).Abs()
	assert.True(t, diff.LessThanOrEqual(monthly),
		"total %s should be within one monthly amount of %s", period.Amount, depreciableBase)
}

func TestScheduleDepreciation_FullyDepreciatedSkips(t *testing.T) {
	last := date(2029, time.January, 15) // useful life end
	asset := domain.Asset{
		AssetID:              "asset-1",
		Cost:                 decimal.NewFromInt(12000),
		SalvageValue:         decimal.Zero,
		UsefulLifeYears:      5,
		DateReceived:         date(2024, time.January, 15),
		LastDepreciationDate: &last,
	}

	period, err := accounting.ScheduleDepreciation(asset, date(2030, time.June, 1))
	require.NoError(t, err)
	assert.True(t, period.Skip)
}

func TestScheduleDepreciation_StartNeverPrecedesReceipt(t *testing.T) {
	last := date(2023, time.December, 1) // before the asset was received
	asset := domain.Asset{
		AssetID:              "asset-1",
		Cost:                 decimal.NewFromInt(12000),
		SalvageValue:         decimal.Zero,
		UsefulLifeYears:      5,
		DateReceived:         date(2024, time.January, 15),
		LastDepreciationDate: &last,
	}

	period, err := accounting.ScheduleDepreciation(asset, date(2024, time.January, 31))
	require.NoError(t, err)
	require.False(t, period.Skip)
	assert.Equal(t, date(2024, time.January, 15), period.Start)
	assert.Equal(t, 1, period.Months, "a single partial month counts as one full month")
}

func TestScheduleDepreciation_ZeroBaseSkips(t *testing.T) {
	asset := domain.Asset{
		AssetID:         "asset-1",
		Cost:            decimal.NewFromInt(5000),
		SalvageValue:    decimal.NewFromInt(5000),
		UsefulLifeYears: 5,
		DateReceived:    date(2024, time.January, 1),
	}

	period, err := accounting.ScheduleDepreciation(asset, date(2024, time.December, 31))
	require.NoError(t, err)
	assert.True(t, period.Skip, "zero-value entries are never recorded")
}
