package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow represents a single row in a trial balance report.
// Income and Expense accounts are broken out by transaction category and
// description rather than collapsed to one account row, so DisplayName may
// carry a category label instead of an account name.
type TrialBalanceRow struct {
	DisplayName string          `json:"displayName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceReport lists every non-zero net balance as of a date.
// TotalDebit and TotalCredit are summed independently; the single-entry
// ledger does not guarantee they are equal.
type TrialBalanceReport struct {
	AsOf        time.Time         `json:"asOf"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
}

// CategoryAmount is a labeled line item in a statement section.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// IncomeStatementReport partitions period income and expenses into the
// statement sections used by the renderer.
type IncomeStatementReport struct {
	From              time.Time        `json:"from"`
	To                time.Time        `json:"to"`
	TotalSales        decimal.Decimal  `json:"totalSales"`
	CostOfGoodsSold   decimal.Decimal  `json:"costOfGoodsSold"`
	GrossProfit       decimal.Decimal  `json:"grossProfit"`
	InterestIncome    decimal.Decimal  `json:"interestIncome"`
	OtherIncome       []CategoryAmount `json:"otherIncome"`
	TotalOtherIncome  decimal.Decimal  `json:"totalOtherIncome"`
	OperatingExpenses []CategoryAmount `json:"operatingExpenses"`
	TotalExpenses     decimal.Decimal  `json:"totalExpenses"`
	NetProfitLoss     decimal.Decimal  `json:"netProfitLoss"`
}

// AccountBalance is an account with its computed signed balance.
type AccountBalance struct {
	AccountID string          `json:"accountID"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
}

// FixedAssetLine carries a fixed asset's cost and depreciation state for the
// non-current assets section of a balance sheet.
type FixedAssetLine struct {
	Name                    string          `json:"name"`
	Cost                    decimal.Decimal `json:"cost"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	NetBookValue            decimal.Decimal `json:"netBookValue"`
}

// BalanceSheetReport is a point-in-time statement of assets, liabilities and
// equity. Classification of current vs non-current lines follows explicit
// account tags where present, falling back to the name-substring heuristic.
// TotalAssets is not guaranteed to equal TotalEquityAndLiabilities; the
// single-entry ledger cannot assert that by construction.
type BalanceSheetReport struct {
	AsOf time.Time `json:"asOf"`

	FixedAssets                  []FixedAssetLine `json:"fixedAssets"`
	TotalFixedAssetsAtCost       decimal.Decimal  `json:"totalFixedAssetsAtCost"`
	TotalAccumulatedDepreciation decimal.Decimal  `json:"totalAccumulatedDepreciation"`
	NetFixedAssets               decimal.Decimal  `json:"netFixedAssets"`

	CurrentAssets      []AccountBalance `json:"currentAssets"`
	TotalCurrentAssets decimal.Decimal  `json:"totalCurrentAssets"`
	TotalAssets        decimal.Decimal  `json:"totalAssets"`

	EquityAccounts   []AccountBalance `json:"equityAccounts"`
	RetainedEarnings decimal.Decimal  `json:"retainedEarnings"`
	TotalEquity      decimal.Decimal  `json:"totalEquity"`

	NonCurrentLiabilities      []AccountBalance `json:"nonCurrentLiabilities"`
	TotalNonCurrentLiabilities decimal.Decimal  `json:"totalNonCurrentLiabilities"`
	CurrentLiabilities         []AccountBalance `json:"currentLiabilities"`
	TotalCurrentLiabilities    decimal.Decimal  `json:"totalCurrentLiabilities"`

	TotalEquityAndLiabilities decimal.Decimal `json:"totalEquityAndLiabilities"`
}

// CashFlowLine is a single classified transaction in a cash flow statement,
// signed positive for income and negative for expense.
type CashFlowLine struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// CashFlowReport groups period transactions into operating, investing and
// financing activities.
type CashFlowReport struct {
	From            time.Time       `json:"from"`
	To              time.Time       `json:"to"`
	Operating       []CashFlowLine  `json:"operating"`
	Investing       []CashFlowLine  `json:"investing"`
	Financing       []CashFlowLine  `json:"financing"`
	TotalOperating  decimal.Decimal `json:"totalOperating"`
	TotalInvesting  decimal.Decimal `json:"totalInvesting"`
	TotalFinancing  decimal.Decimal `json:"totalFinancing"`
	NetChangeInCash decimal.Decimal `json:"netChangeInCash"`
}

// DepreciatedAsset reports one asset advanced by a depreciation run.
type DepreciatedAsset struct {
	AssetID       string          `json:"assetId"`
	Amount        decimal.Decimal `json:"amount"`
	TransactionID string          `json:"transactionId"`
}

// DepreciationRunResult is the outcome of a successful depreciation run.
type DepreciationRunResult struct {
	TotalDepreciationExpense decimal.Decimal    `json:"totalDepreciationExpense"`
	DepreciatedAssets        []DepreciatedAsset `json:"depreciatedAssets"`
}
