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

func TestBuildIncomeStatement(t *testing.T) {
	from := date(2024, time.January, 1)
	to := date(2024, time.March, 31)

	transactions := []domain.Transaction{
		{Type: domain.TransactionIncome, Category: "Sales Revenue", Amount: decimal.NewFromInt(5000), Date: date(2024, time.January, 10)},
		{Type: domain.TransactionIncome, Category: "Trading Income", Amount: decimal.NewFromInt(2000), Date: date(2024, time.February, 5)},
		{Type: domain.TransactionIncome, Category: "Interest Income", Amount: decimal.NewFromInt(120), Date: date(2024, time.February, 20)},
		{Type: domain.TransactionIncome, Category: "Commission", Amount: decimal.NewFromInt(380), Date: date(2024, time.March, 1)},
		{Type: domain.TransactionExpense, Category: "Cost of Goods Sold", Amount: decimal.NewFromInt(2500), Date: date(2024, time.January, 15)},
		{Type: domain.TransactionExpense, Category: "Office Rent", Amount: decimal.NewFromInt(900), Date: date(2024, time.January, 31)},
		{Type: domain.TransactionExpense, Category: "Office Rent", Amount: decimal.NewFromInt(900), Date: date(2024, time.February, 29)},
		{Type: domain.TransactionExpense, Category: "Salaries", Amount: decimal.NewFromInt(1500), Date: date(2024, time.March, 25)},
		// Outside the period; must be ignored.
		{Type: domain.TransactionIncome, Category: "Sales Revenue", Amount: decimal.NewFromInt(9999), Date: date(2024, time.April, 1)},
	}

	report := accounting.BuildIncomeStatement(transactions, from, to)

	assert.True(t, report.TotalSales.Equal(decimal.NewFromInt(7000)), "sales %s", report.TotalSales)
	assert.True(t, report.CostOfGoodsSold.Equal(decimal.NewFromInt(2500)))
	assert.True(t, report.GrossProfit.Equal(decimal.NewFromInt(4500)))
	assert.True(t, report.InterestIncome.Equal(decimal.NewFromInt(120)))
	assert.True(t, report.TotalOtherIncome.Equal(decimal.NewFromInt(380)))

	require.Len(t, report.OtherIncome, 1)
	assert.Equal(t, "Commission", report.OtherIncome[0].Category)

	// Rent is merged into one line; COGS never appears under operating expenses.
	require.Len(t, report.OperatingExpenses, 2)
	byCategory := map[string]decimal.Decimal{}
	for _, line := range report.OperatingExpenses {
		byCategory[line.Category] = line.Amount
	}
	assert.True(t, byCategory["Office Rent"].Equal(decimal.NewFromInt(1800)))
	assert.True(t, byCategory["Salaries"].Equal(decimal.NewFromInt(1500)))
	assert.True(t, report.TotalExpenses.Equal(decimal.NewFromInt(3300)))

	// netProfitLoss = grossProfit + interestIncome + otherIncome - totalExpenses
	assert.True(t, report.NetProfitLoss.Equal(decimal.NewFromInt(1700)), "net %s", report.NetProfitLoss)
}

func TestBuildIncomeStatement_EmptyPeriod(t *testing.T) {
	report := accounting.BuildIncomeStatement(nil, date(2024, time.January, 1), date(2024, time.January, 31))

	assert.True(t, report.TotalSales.IsZero())
	assert.True(t, report.NetProfitLoss.IsZero())
	assert.Empty(t, report.OperatingExpenses)
	assert.Empty(t, report.OtherIncome)
}
