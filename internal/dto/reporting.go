package dto

import (
	"github.com/quantilytix/qbeta-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CategoryAmountResponse is a labeled line item in a statement section.
type CategoryAmountResponse struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// AccountBalanceResponse is an account line with its signed balance.
type AccountBalanceResponse struct {
	AccountID string          `json:"accountId"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
}

func toCategoryAmounts(lines []domain.CategoryAmount) []CategoryAmountResponse {
	out := make([]CategoryAmountResponse, len(lines))
	for i, l := range lines {
		out[i] = CategoryAmountResponse{Category: l.Category, Amount: l.Amount}
	}
	return out
}

func toAccountBalances(lines []domain.AccountBalance) []AccountBalanceResponse {
	out := make([]AccountBalanceResponse, len(lines))
	for i, l := range lines {
		out[i] = AccountBalanceResponse{AccountID: l.AccountID, Name: l.Name, Balance: l.Balance}
	}
	return out
}

// IncomeStatementResponse is the JSON form of an income statement.
type IncomeStatementResponse struct {
	From              string                   `json:"from"`
	To                string                   `json:"to"`
	TotalSales        decimal.Decimal          `json:"totalSales"`
	CostOfGoodsSold   decimal.Decimal          `json:"costOfGoodsSold"`
	GrossProfit       decimal.Decimal          `json:"grossProfit"`
	InterestIncome    decimal.Decimal          `json:"interestIncome"`
	OtherIncome       []CategoryAmountResponse `json:"otherIncome"`
	TotalOtherIncome  decimal.Decimal          `json:"totalOtherIncome"`
	OperatingExpenses []CategoryAmountResponse `json:"operatingExpenses"`
	TotalExpenses     decimal.Decimal          `json:"totalExpenses"`
	NetProfitLoss     decimal.Decimal          `json:"netProfitLoss"`
}

// ToIncomeStatementResponse converts a domain income statement to its DTO.
func ToIncomeStatementResponse(report *domain.IncomeStatementReport) IncomeStatementResponse {
	return IncomeStatementResponse{
		From:              report.From.Format("2006-01-02"),
		To:                report.To.Format("2006-01-02"),
		TotalSales:        report.TotalSales,
		CostOfGoodsSold:   report.CostOfGoodsSold,
		GrossProfit:       report.GrossProfit,
		InterestIncome:    report.InterestIncome,
		OtherIncome:       toCategoryAmounts(report.OtherIncome),
		TotalOtherIncome:  report.TotalOtherIncome,
		OperatingExpenses: toCategoryAmounts(report.OperatingExpenses),
		TotalExpenses:     report.TotalExpenses,
		NetProfitLoss:     report.NetProfitLoss,
	}
}

// TrialBalanceRowResponse represents a row in the trial balance response.
type TrialBalanceRowResponse struct {
	DisplayName string          `json:"displayName"`
	AccountType string          `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceResponse is the JSON form of a trial balance.
type TrialBalanceResponse struct {
	AsOf   string                    `json:"asOf"`
	Rows   []TrialBalanceRowResponse `json:"rows"`
	Totals struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
}

// ToTrialBalanceResponse converts a domain trial balance to its DTO.
func ToTrialBalanceResponse(report *domain.TrialBalanceReport) TrialBalanceResponse {
	response := TrialBalanceResponse{
		AsOf: report.AsOf.Format("2006-01-02"),
		Rows: make([]TrialBalanceRowResponse, len(report.Rows)),
	}
	for i, row := range report.Rows {
		response.Rows[i] = TrialBalanceRowResponse{
			DisplayName: row.DisplayName,
			AccountType: string(row.AccountType),
			Debit:       row.Debit,
			Credit:      row.Credit,
		}
	}
	response.Totals.Debit = report.TotalDebit
	response.Totals.Credit = report.TotalCredit
	return response
}

// FixedAssetLineResponse is a fixed asset line on the balance sheet.
type FixedAssetLineResponse struct {
	Name                    string          `json:"name"`
	Cost                    decimal.Decimal `json:"cost"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	NetBookValue            decimal.Decimal `json:"netBookValue"`
}

// BalanceSheetResponse is the JSON form of a balance sheet.
type BalanceSheetResponse struct {
	AsOf string `json:"asOf"`

	FixedAssets                  []FixedAssetLineResponse `json:"fixedAssets"`
	TotalFixedAssetsAtCost       decimal.Decimal          `json:"totalFixedAssetsAtCost"`
	TotalAccumulatedDepreciation decimal.Decimal          `json:"totalAccumulatedDepreciation"`
	NetFixedAssets               decimal.Decimal          `json:"netFixedAssets"`

	CurrentAssets      []AccountBalanceResponse `json:"currentAssets"`
	TotalCurrentAssets decimal.Decimal          `json:"totalCurrentAssets"`
	TotalAssets        decimal.Decimal          `json:"totalAssets"`

	EquityAccounts   []AccountBalanceResponse `json:"equityAccounts"`
	RetainedEarnings decimal.Decimal          `json:"retainedEarnings"`
	TotalEquity      decimal.Decimal          `json:"totalEquity"`

	NonCurrentLiabilities      []AccountBalanceResponse `json:"nonCurrentLiabilities"`
	TotalNonCurrentLiabilities decimal.Decimal          `json:"totalNonCurrentLiabilities"`
	CurrentLiabilities         []AccountBalanceResponse `json:"currentLiabilities"`
	TotalCurrentLiabilities    decimal.Decimal          `json:"totalCurrentLiabilities"`

	TotalEquityAndLiabilities decimal.Decimal `json:"totalEquityAndLiabilities"`
}

// ToBalanceSheetResponse converts a domain balance sheet to its DTO.
func ToBalanceSheetResponse(report *domain.BalanceSheetReport) BalanceSheetResponse {
	fixedAssets := make([]FixedAssetLineResponse, len(report.FixedAssets))
	for i, fa := range report.FixedAssets {
		fixedAssets[i] = FixedAssetLineResponse{
			Name:                    fa.Name,
			Cost:                    fa.Cost,
			AccumulatedDepreciation: fa.AccumulatedDepreciation,
			NetBookValue:            fa.NetBookValue,
		}
	}
	return BalanceSheetResponse{
		AsOf:                         report.AsOf.Format("2006-01-02"),
		FixedAssets:                  fixedAssets,
		TotalFixedAssetsAtCost:       report.TotalFixedAssetsAtCost,
		TotalAccumulatedDepreciation: report.TotalAccumulatedDepreciation,
		NetFixedAssets:               report.NetFixedAssets,
		CurrentAssets:                toAccountBalances(report.CurrentAssets),
		TotalCurrentAssets:           report.TotalCurrentAssets,
		TotalAssets:                  report.TotalAssets,
		EquityAccounts:               toAccountBalances(report.EquityAccounts),
		RetainedEarnings:             report.RetainedEarnings,
		TotalEquity:                  report.TotalEquity,
		NonCurrentLiabilities:        toAccountBalances(report.NonCurrentLiabilities),
		TotalNonCurrentLiabilities:   report.TotalNonCurrentLiabilities,
		CurrentLiabilities:           toAccountBalances(report.CurrentLiabilities),
		TotalCurrentLiabilities:      report.TotalCurrentLiabilities,
		TotalEquityAndLiabilities:    report.TotalEquityAndLiabilities,
	}
}

// CashFlowLineResponse is a classified cash movement line.
type CashFlowLineResponse struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// CashFlowResponse is the JSON form of a cash flow statement.
type CashFlowResponse struct {
	From            string                 `json:"from"`
	To              string                 `json:"to"`
	Operating       []CashFlowLineResponse `json:"operating"`
	Investing       []CashFlowLineResponse `json:"investing"`
	Financing       []CashFlowLineResponse `json:"financing"`
	TotalOperating  decimal.Decimal        `json:"totalOperating"`
	TotalInvesting  decimal.Decimal        `json:"totalInvesting"`
	TotalFinancing  decimal.Decimal        `json:"totalFinancing"`
	NetChangeInCash decimal.Decimal        `json:"netChangeInCash"`
}

func toCashFlowLines(lines []domain.CashFlowLine) []CashFlowLineResponse {
	out := make([]CashFlowLineResponse, len(lines))
	for i, l := range lines {
		out[i] = CashFlowLineResponse{Category: l.Category, Amount: l.Amount}
	}
	return out
}

// ToCashFlowResponse converts a domain cash flow report to its DTO.
func ToCashFlowResponse(report *domain.CashFlowReport) CashFlowResponse {
	return CashFlowResponse{
		From:            report.From.Format("2006-01-02"),
		To:              report.To.Format("2006-01-02"),
		Operating:       toCashFlowLines(report.Operating),
		Investing:       toCashFlowLines(report.Investing),
		Financing:       toCashFlowLines(report.Financing),
		TotalOperating:  report.TotalOperating,
		TotalInvesting:  report.TotalInvesting,
		TotalFinancing:  report.TotalFinancing,
		NetChangeInCash: report.NetChangeInCash,
	}
}
