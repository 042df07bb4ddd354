package dto

import (
	"github.com/quantilytix/qbeta-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAssetRequest defines the expected JSON body for registering a fixed
// asset. Depreciation state always starts at zero; it is advanced only by
// depreciation runs.
type CreateAssetRequest struct {
	Name               string          `json:"name" binding:"required"`
	Cost               decimal.Decimal `json:"cost" binding:"required"`
	DateReceived       string          `json:"dateReceived" binding:"required,isodate"`
	AccountID          string          `json:"accountId"`
	DepreciationMethod string          `json:"depreciationMethod" binding:"omitempty,oneof=straight-line"`
	UsefulLifeYears    int             `json:"usefulLifeYears"`
	SalvageValue       decimal.Decimal `json:"salvageValue"`
}

// UpdateAssetRequest defines the expected JSON body for updating an asset.
// Nil fields are left unchanged. Accumulated depreciation and the last
// depreciation date are not updatable through this request.
type UpdateAssetRequest struct {
	Name               *string          `json:"name"`
	Cost               *decimal.Decimal `json:"cost"`
	DateReceived       *string          `json:"dateReceived" binding:"omitempty,isodate"`
	AccountID          *string          `json:"accountId"`
	DepreciationMethod *string          `json:"depreciationMethod" binding:"omitempty,oneof=straight-line"`
	UsefulLifeYears    *int             `json:"usefulLifeYears"`
	SalvageValue       *decimal.Decimal `json:"salvageValue"`
}

// AssetResponse defines the JSON representation of a fixed asset.
type AssetResponse struct {
	ID                      string          `json:"id"`
	Name                    string          `json:"name"`
	Cost                    decimal.Decimal `json:"cost"`
	DateReceived            string          `json:"dateReceived"`
	AccountID               string          `json:"accountId,omitempty"`
	DepreciationMethod      string          `json:"depreciationMethod,omitempty"`
	UsefulLifeYears         int             `json:"usefulLifeYears"`
	SalvageValue            decimal.Decimal `json:"salvageValue"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	LastDepreciationDate    string          `json:"lastDepreciationDate,omitempty"`
}

// ToAssetResponse converts a domain asset to its response DTO.
func ToAssetResponse(asset *domain.Asset) AssetResponse {
	resp := AssetResponse{
		ID:                      asset.AssetID,
		Name:                    asset.Name,
		Cost:                    asset.Cost,
		DateReceived:            asset.DateReceived.Format("2006-01-02"),
		AccountID:               asset.AccountID,
		DepreciationMethod:      string(asset.DepreciationMethod),
		UsefulLifeYears:         asset.UsefulLifeYears,
		SalvageValue:            asset.SalvageValue,
		AccumulatedDepreciation: asset.AccumulatedDepreciation,
	}
	if asset.LastDepreciationDate != nil {
		resp.LastDepreciationDate = asset.LastDepreciationDate.Format("2006-01-02")
	}
	return resp
}

// ToListAssetResponse converts a slice of domain assets to response DTOs.
func ToListAssetResponse(assets []domain.Asset) []AssetResponse {
	out := make([]AssetResponse, len(assets))
	for i := range assets {
		out[i] = ToAssetResponse(&assets[i])
	}
	return out
}
