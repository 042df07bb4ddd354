package dto

import (
	"github.com/quantilytix/qbeta-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RunDepreciationRequest defines the expected JSON body for triggering a
// depreciation run. AsOfDate is an ISO date string (YYYY-MM-DD) giving the
// date up to which depreciation is calculated.
type RunDepreciationRequest struct {
	AsOfDate string `json:"asOfDate" binding:"required,isodate"`
}

// DepreciatedAssetResponse reports one asset advanced by a run.
type DepreciatedAssetResponse struct {
	AssetID       string          `json:"assetId"`
	Amount        decimal.Decimal `json:"amount"`
	TransactionID string          `json:"transactionId"`
}

// DepreciationRunResponse is the JSON result of a depreciation run.
type DepreciationRunResponse struct {
	Message                  string                     `json:"message"`
	TotalDepreciationExpense decimal.Decimal            `json:"totalDepreciationExpense"`
	DepreciatedAssets        []DepreciatedAssetResponse `json:"depreciatedAssets"`
}

// ToDepreciationRunResponse converts a run result to its response DTO.
func ToDepreciationRunResponse(result *domain.DepreciationRunResult) DepreciationRunResponse {
	assets := make([]DepreciatedAssetResponse, len(result.DepreciatedAssets))
	for i, a := range result.DepreciatedAssets {
		assets[i] = DepreciatedAssetResponse{
			AssetID:       a.AssetID,
			Amount:        a.Amount,
			TransactionID: a.TransactionID,
		}
	}
	return DepreciationRunResponse{
		Message:                  "Depreciation calculated and recorded successfully.",
		TotalDepreciationExpense: result.TotalDepreciationExpense,
		DepreciatedAssets:        assets,
	}
}
