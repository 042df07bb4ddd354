package accounting

import (
	"sort"
	"time"

	"github.com/quantilytix/qbeta-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Categories with dedicated lines on the income statement.
const (
	CategorySalesRevenue    = "Sales Revenue"
	CategoryTradingIncome   = "Trading Income"
	CategoryInterestIncome  = "Interest Income"
	CategoryCostOfGoodsSold = "Cost of Goods Sold"
)

func sortedCategoryAmounts(m map[string]decimal.Decimal) []domain.CategoryAmount {
	out := make([]domain.CategoryAmount, 0, len(m))
	for category, amount := range m {
		out = append(out, domain.CategoryAmount{Category: category, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// BuildIncomeStatement partitions the period's transactions into statement
// sections. Sales Revenue and Trading Income feed total sales; Interest
// Income has its own line; every other income category is itemized under
// other income. Cost of Goods Sold is netted against sales for gross profit;
// all remaining expense categories are itemized as operating expenses.
//
//	netProfitLoss = grossProfit + interestIncome + otherIncome - totalExpenses
func BuildIncomeStatement(transactions []domain.Transaction, from, to time.Time) *domain.IncomeStatementReport {
	report := &domain.IncomeStatementReport{
		From:            from,
		To:              to,
		TotalSales:      decimal.Zero,
		CostOfGoodsSold: decimal.Zero,
		InterestIncome:  decimal.Zero,
	}

	otherIncome := make(map[string]decimal.Decimal)
	operatingExpenses := make(map[string]decimal.Decimal)
	totalOtherIncome := decimal.Zero
	totalExpenses := decimal.Zero

	for _, txn := range transactions {
		if txn.Date.Before(from) || txn.Date.After(to) {
			continue
		}
		switch txn.Type {
		case domain.TransactionIncome:
			switch txn.Category {
			case CategorySalesRevenue, CategoryTradingIncome:
				report.TotalSales = report.TotalSales.Add(txn.Amount)
			case CategoryInterestIncome:
				report.InterestIncome = report.InterestIncome.Add(txn.Amount)
			default:
				otherIncome[txn.Category] = otherIncome[txn.Category].Add(txn.Amount)
				totalOtherIncome = totalOtherIncome.Add(txn.Amount)
			}
		case domain.TransactionExpense:
			if txn.Category == CategoryCostOfGoodsSold {
				report.CostOfGoodsSold = report.CostOfGoodsSold.Add(txn.Amount)
			} else {
				operatingExpenses[txn.Category] = operatingExpenses[txn.Category].Add(txn.Amount)
				totalExpenses = totalExpenses.Add(txn.Amount)
			}
		}
	}

	report.OtherIncome = sortedCategoryAmounts(otherIncome)
	report.TotalOtherIncome = totalOtherIncome
	report.OperatingExpenses = sortedCategoryAmounts(operatingExpenses)
	report.TotalExpenses = totalExpenses
	report.GrossProfit = report.TotalSales.Sub(report.CostOfGoodsSold)
	report.NetProfitLoss = report.GrossProfit.
		Add(report.InterestIncome).
		Add(totalOtherIncome).
		Sub(totalExpenses)
	return report
}
