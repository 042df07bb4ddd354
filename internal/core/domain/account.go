package domain

import "time"

// AccountType defines the fundamental accounting type of an account.
// The type determines the account's normal balance side: Asset and Expense
// accounts are debit-normal, Liability, Equity and Income accounts are
// credit-normal.
type AccountType string

const (
	AccountTypeAsset     AccountType = "Asset"
	AccountTypeLiability AccountType = "Liability"
	AccountTypeEquity    AccountType = "Equity"
	AccountTypeIncome    AccountType = "Income"
	AccountTypeExpense   AccountType = "Expense"
)

// IsDebitNormal reports whether the account type carries a conventionally
// positive balance on the debit side.
func (t AccountType) IsDebitNormal() bool {
	return t == AccountTypeAsset || t == AccountTypeExpense
}

// IsValid reports whether t is one of the five known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeIncome, AccountTypeExpense:
		return true
	}
	return false
}

// AccountClass is an explicit balance-sheet classification tag.
// When empty, classification falls back to the name-substring heuristic
// seeded in the accounting package.
type AccountClass string

const (
	ClassUnspecified         AccountClass = ""
	ClassCurrentAsset        AccountClass = "current-asset"
	ClassNonCurrentAsset     AccountClass = "non-current-asset"
	ClassCurrentLiability    AccountClass = "current-liability"
	ClassNonCurrentLiability AccountClass = "non-current-liability"
)

// Account represents an entry in the chart of accounts.
// The account type is treated as immutable once transactions reference the
// account; this is enforced by convention, not by a database constraint.
type Account struct {
	AccountID string       `json:"accountID"`
	Name      string       `json:"name"`
	Type      AccountType  `json:"type"`
	Code      string       `json:"code"`
	Class     AccountClass `json:"class,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}
