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

func TestSingleEntryRuleSign(t *testing.T) {
	rule := accounting.SingleEntryRule{}

	testCases := []struct {
		accountType domain.AccountType
		txnType     domain.TransactionType
		expected    int
	}{
		{domain.AccountTypeAsset, domain.TransactionExpense, 1},
		{domain.AccountTypeAsset, domain.TransactionIncome, -1},
		{domain.AccountTypeExpense, domain.TransactionExpense, 1},
		{domain.AccountTypeExpense, domain.TransactionIncome, -1},
		{domain.AccountTypeLiability, domain.TransactionIncome, 1},
		{domain.AccountTypeLiability, domain.TransactionExpense, -1},
		{domain.AccountTypeEquity, domain.TransactionIncome, 1},
		{domain.AccountTypeEquity, domain.TransactionExpense, -1},
		{domain.AccountTypeIncome, domain.TransactionIncome, 1},
		{domain.AccountTypeIncome, domain.TransactionExpense, -1},
	}

	for _, tc := range testCases {
		t.Run(string(tc.accountType)+"/"+string(tc.txnType), func(t *testing.T) {
			sign, err := rule.Sign(tc.accountType, tc.txnType)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, sign)
		})
	}

	_, err := rule.Sign("Revenue", domain.TransactionIncome)
	assert.Error(t, err, "unknown account type must be rejected")
}

func TestComputeAccountBalance(t *testing.T) {
	rule := accounting.SingleEntryRule{}
	account := domain.Account{AccountID: "acc-1", Name: "Business Bank", Type: domain.AccountTypeAsset}

	transactions := []domain.Transaction{
		{TransactionID: "t1", AccountID: "acc-1", Type: domain.TransactionExpense, Amount: decimal.NewFromInt(100), Date: date(2024, time.January, 10)},
		{TransactionID: "t2", AccountID: "acc-1", Type: domain.TransactionIncome, Amount: decimal.NewFromInt(30), Date: date(2024, time.February, 1)},
		{TransactionID: "t3", AccountID: "acc-2", Type: domain.TransactionExpense, Amount: decimal.NewFromInt(999), Date: date(2024, time.January, 5)},
		{TransactionID: "t4", AccountID: "acc-1", Type: domain.TransactionExpense, Amount: decimal.NewFromInt(50), Date: date(2024, time.June, 1)},
	}

	balance, err := accounting.ComputeAccountBalance(rule, account, transactions, date(2024, time.March, 31))
	require.NoError(t, err)
	// Debit-normal: the expense adds, the income subtracts; t3 belongs to
	// another account and t4 is after the as-of date.
	assert.True(t, balance.Equal(decimal.NewFromInt(70)), "got %s", balance)
}

func TestRetainedEarnings(t *testing.T) {
	transactions := []domain.Transaction{
		{Type: domain.TransactionIncome, Amount: decimal.NewFromInt(1000), Date: date(2024, time.January, 1)},
		{Type: domain.TransactionExpense, Amount: decimal.NewFromInt(400), Date: date(2024, time.February, 1)},
		{Type: domain.TransactionIncome, Amount: decimal.NewFromInt(250), Date: date(2024, time.December, 31)},
	}

	earnings := accounting.RetainedEarnings(transactions, date(2024, time.June, 30))
	assert.True(t, earnings.Equal(decimal.NewFromInt(600)), "got %s", earnings)
}
