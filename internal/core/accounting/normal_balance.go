package accounting

import (
	"fmt"

	"github.com/quantilytix/qbeta-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NormalBalanceRule maps an (account type, transaction type) pair to the sign
// the transaction amount contributes to the account's balance.
//
// The ledger conflates transaction direction (income/expense) with
// debit/credit polarity instead of modelling true double-entry journal
// lines. Keeping the mapping behind this interface lets a real double-entry
// model replace it later without disturbing callers.
type NormalBalanceRule interface {
	// Sign returns +1 or -1 for the contribution of a transaction of the
	// given type to an account of the given type.
	Sign(accountType domain.AccountType, txnType domain.TransactionType) (int, error)
}

// SingleEntryRule is the default NormalBalanceRule.
//
// Debit-normal accounts (Asset, Expense): an expense-typed transaction adds
// to the balance, an income-typed transaction subtracts. Credit-normal
// accounts (Liability, Equity, Income) reverse the polarity.
type SingleEntryRule struct{}

var _ NormalBalanceRule = SingleEntryRule{}

func (SingleEntryRule) Sign(accountType domain.AccountType, txnType domain.TransactionType) (int, error) {
	if !accountType.IsValid() {
		return 0, fmt.Errorf("unknown account type %q", accountType)
	}
	if !txnType.IsValid() {
		return 0, fmt.Errorf("unknown transaction type %q", txnType)
	}

	sign := 1
	if txnType == domain.TransactionIncome {
		sign = -1
	}
	if !accountType.IsDebitNormal() {
		sign = -sign
	}
	return sign, nil
}

// SignedAmount applies rule to txn for an account of the given type.
func SignedAmount(rule NormalBalanceRule, txn domain.Transaction, accountType domain.AccountType) (decimal.Decimal, error) {
	sign, err := rule.Sign(accountType, txn.Type)
	if err != nil {
		return decimal.Zero, fmt.Errorf("transaction %s: %w", txn.TransactionID, err)
	}
	if sign < 0 {
		return txn.Amount.Neg(), nil
	}
	return txn.Amount, nil
}
