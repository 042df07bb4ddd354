package accounting

import (
	"sort"
	"time"

	"github.com/quantilytix/qbeta-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

func sortedByName(lines []domain.AccountBalance) {
	sort.Slice(lines, func(i, j int) bool { return lines[i].Name < lines[j].Name })
}

// BuildBalanceSheet assembles a point-in-time balance sheet.
//
// Non-current assets are the fixed assets received on or before asOf, at
// cost less accumulated depreciation. Current assets, current liabilities
// and non-current liabilities are the matching accounts' signed balances per
// the classifier. Equity is the Equity-type account balances plus retained
// earnings (the signed sum of every transaction up to asOf).
//
// TotalAssets equals TotalEquityAndLiabilities only when the classification
// happens to capture every account; the computation is reproducible, but the
// identity is not guaranteed by construction.
func BuildBalanceSheet(rule NormalBalanceRule, classifier *Classifier, accounts []domain.Account, transactions []domain.Transaction, assets []domain.Asset, asOf time.Time) (*domain.BalanceSheetReport, error) {
	report := &domain.BalanceSheetReport{
		AsOf:                         asOf,
		TotalFixedAssetsAtCost:       decimal.Zero,
		TotalAccumulatedDepreciation: decimal.Zero,
		TotalCurrentAssets:           decimal.Zero,
		TotalNonCurrentLiabilities:   decimal.Zero,
		TotalCurrentLiabilities:      decimal.Zero,
	}

	for _, asset := range assets {
		if asset.DateReceived.After(asOf) {
			continue
		}
		line := domain.FixedAssetLine{
			Name:                    asset.Name,
			Cost:                    asset.Cost,
			AccumulatedDepreciation: asset.AccumulatedDepreciation,
			NetBookValue:            asset.Cost.Sub(asset.AccumulatedDepreciation),
		}
		report.FixedAssets = append(report.FixedAssets, line)
		report.TotalFixedAssetsAtCost = report.TotalFixedAssetsAtCost.Add(asset.Cost)
		report.TotalAccumulatedDepreciation = report.TotalAccumulatedDepreciation.Add(asset.AccumulatedDepreciation)
	}
	sort.Slice(report.FixedAssets, func(i, j int) bool {
		return report.FixedAssets[i].Name < report.FixedAssets[j].Name
	})
	report.NetFixedAssets = report.TotalFixedAssetsAtCost.Sub(report.TotalAccumulatedDepreciation)

	totalEquityAccounts := decimal.Zero
	for _, account := range accounts {
		switch account.Type {
		case domain.AccountTypeAsset, domain.AccountTypeLiability, domain.AccountTypeEquity:
		default:
			continue
		}
		balance, err := ComputeAccountBalance(rule, account, transactions, asOf)
		if err != nil {
			return nil, err
		}
		line := domain.AccountBalance{AccountID: account.AccountID, Name: account.Name, Balance: balance}

		switch {
		case classifier.IsCurrentAsset(account):
			report.CurrentAssets = append(report.CurrentAssets, line)
			report.TotalCurrentAssets = report.TotalCurrentAssets.Add(balance)
		case account.Type == domain.AccountTypeEquity:
			report.EquityAccounts = append(report.EquityAccounts, line)
			totalEquityAccounts = totalEquityAccounts.Add(balance)
		case classifier.IsNonCurrentLiability(account):
			report.NonCurrentLiabilities = append(report.NonCurrentLiabilities, line)
			report.TotalNonCurrentLiabilities = report.TotalNonCurrentLiabilities.Add(balance)
		case classifier.IsCurrentLiability(account):
			report.CurrentLiabilities = append(report.CurrentLiabilities, line)
			report.TotalCurrentLiabilities = report.TotalCurrentLiabilities.Add(balance)
		}
	}
	sortedByName(report.CurrentAssets)
	sortedByName(report.EquityAccounts)
	sortedByName(report.NonCurrentLiabilities)
	sortedByName(report.CurrentLiabilities)

	report.TotalAssets = report.NetFixedAssets.Add(report.TotalCurrentAssets)
	report.RetainedEarnings = RetainedEarnings(transactions, asOf)
	report.TotalEquity = totalEquityAccounts.Add(report.RetainedEarnings)
	report.TotalEquityAndLiabilities = report.TotalEquity.
		Add(report.TotalNonCurrentLiabilities).
		Add(report.TotalCurrentLiabilities)
	return report, nil
}
