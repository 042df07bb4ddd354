package accounting

import (
	"sort"
	"time"

	"github.com/quantilytix/qbeta-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

type trialBalanceKey struct {
	displayName string
	accountType domain.AccountType
}

// trialBalanceDisplayName returns the row label for a transaction against an
// account. Income and Expense activity is broken out by transaction category
// plus description; all other account types collapse to the account name.
func trialBalanceDisplayName(account domain.Account, txn domain.Transaction) string {
	if (account.Type == domain.AccountTypeIncome || account.Type == domain.AccountTypeExpense) && txn.Category != "" {
		name := txn.Category
		if txn.Description != "" {
			name += " - " + txn.Description
		}
		return name
	}
	return account.Name
}

// BuildTrialBalance computes the net balance of every (account, category,
// description) grouping over transactions dated on or before asOf, splits
// each non-zero net into debit/credit display columns by normal-balance
// side, and sums the columns independently.
//
// Rows whose net balance is exactly zero are dropped. Transactions that
// reference no known account are ignored. The report does not assert that
// total debits equal total credits; without a true double-entry journal that
// equality is not guaranteed by construction.
func BuildTrialBalance(rule NormalBalanceRule, accounts []domain.Account, transactions []domain.Transaction, asOf time.Time) (*domain.TrialBalanceReport, error) {
	accountsByID := make(map[string]domain.Account, len(accounts))
	for _, a := range accounts {
		accountsByID[a.AccountID] = a
	}

	nets := make(map[trialBalanceKey]decimal.Decimal)
	for _, txn := range transactions {
		if txn.Date.After(asOf) {
			continue
		}
		account, ok := accountsByID[txn.AccountID]
		if !ok {
			continue
		}
		signed, err := SignedAmount(rule, txn, account.Type)
		if err != nil {
			return nil, err
		}
		key := trialBalanceKey{
			displayName: trialBalanceDisplayName(account, txn),
			accountType: account.Type,
		}
		nets[key] = nets[key].Add(signed)
	}

	rows := make([]domain.TrialBalanceRow, 0, len(nets))
	for key, net := range nets {
		if net.IsZero() {
			continue
		}
		row := domain.TrialBalanceRow{
			DisplayName: key.displayName,
			AccountType: key.accountType,
			Debit:       decimal.Zero,
			Credit:      decimal.Zero,
		}
		// Positive net sits on the account's normal side; negative net flips
		// to the opposite column as a magnitude.
		if key.accountType.IsDebitNormal() {
			if net.IsPositive() {
				row.Debit = net
			} else {
				row.Credit = net.Abs()
			}
		} else {
			if net.IsPositive() {
				row.Credit = net
			} else {
				row.Debit = net.Abs()
			}
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].AccountType != rows[j].AccountType {
			return rows[i].AccountType < rows[j].AccountType
		}
		return rows[i].DisplayName < rows[j].DisplayName
	})

	report := &domain.TrialBalanceReport{
		AsOf:        asOf,
		Rows:        rows,
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for _, row := range rows {
		report.TotalDebit = report.TotalDebit.Add(row.Debit)
		report.TotalCredit = report.TotalCredit.Add(row.Credit)
	}
	return report, nil
}
