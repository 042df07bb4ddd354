package accounting

import (
	"time"

	"github.com/quantilytix/qbeta-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeAccountBalance returns the signed net balance of an account over
// the transactions that reference it, counting only those dated on or before
// asOf. Transactions referencing other accounts are ignored.
func ComputeAccountBalance(rule NormalBalanceRule, account domain.Account, transactions []domain.Transaction, asOf time.Time) (decimal.Decimal, error) {
	balance := decimal.Zero
	for _, txn := range transactions {
		if txn.AccountID != account.AccountID {
			continue
		}
		if txn.Date.After(asOf) {
			continue
		}
		signed, err := SignedAmount(rule, txn, account.Type)
		if err != nil {
			return decimal.Zero, err
		}
		balance = balance.Add(signed)
	}
	return balance, nil
}

// RetainedEarnings is the net signed sum of ALL transactions dated on or
// before asOf, income positive and expense negative, independent of account.
// It is rolled into equity on the balance sheet.
func RetainedEarnings(transactions []domain.Transaction, asOf time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range transactions {
		if txn.Date.After(asOf) {
			continue
		}
		if txn.Type == domain.TransactionIncome {
			total = total.Add(txn.Amount)
		} else {
			total = total.Sub(txn.Amount)
		}
	}
	return total
}
