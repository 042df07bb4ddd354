package accounting

import (
	"time"

	"github.com/quantilytix/qbeta-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuildCashFlow classifies each of the period's transactions into operating,
// investing or financing activities by substring match on its category and
// signs the amount (+income, -expense). Net change in cash is the sum of the
// three section totals.
func BuildCashFlow(classifier *Classifier, transactions []domain.Transaction, from, to time.Time) *domain.CashFlowReport {
	report := &domain.CashFlowReport{
		From:           from,
		To:             to,
		TotalOperating: decimal.Zero,
		TotalInvesting: decimal.Zero,
		TotalFinancing: decimal.Zero,
	}

	for _, txn := range transactions {
		if txn.Date.Before(from) || txn.Date.After(to) {
			continue
		}
		if !txn.Type.IsValid() {
			continue
		}
		amount := txn.Amount
		if txn.Type == domain.TransactionExpense {
			amount = amount.Neg()
		}
		line := domain.CashFlowLine{Category: txn.Category, Amount: amount}

		switch classifier.ClassifyCashFlow(txn) {
		case SectionInvesting:
			report.Investing = append(report.Investing, line)
			report.TotalInvesting = report.TotalInvesting.Add(amount)
		case SectionFinancing:
			report.Financing = append(report.Financing, line)
			report.TotalFinancing = report.TotalFinancing.Add(amount)
		default:
			report.Operating = append(report.Operating, line)
			report.TotalOperating = report.TotalOperating.Add(amount)
		}
	}

	report.NetChangeInCash = report.TotalOperating.
		Add(report.TotalInvesting).
		Add(report.TotalFinancing)
	return report
}
