package services

import (
	"context"

	"github.com/quantilytix/qbeta-backend/internal/core/domain"
	"github.com/quantilytix/qbeta-backend/internal/dto"
)

// AssetReaderSvc defines read operations for fixed asset data
type AssetReaderSvc interface {
	// GetAssetByID retrieves a specific asset by its unique identifier.
	GetAssetByID(ctx context.Context, assetID string) (*domain.Asset, error)

	// ListAssets retrieves every asset in the register.
	ListAssets(ctx context.Context) ([]domain.Asset, error)
}

// AssetWriterSvc defines write operations for fixed asset data
type AssetWriterSvc interface {
	// CreateAsset persists a new asset.
	CreateAsset(ctx context.Context, req dto.CreateAssetRequest) (*domain.Asset, error)

	// UpdateAsset updates an existing asset's details.
	UpdateAsset(ctx context.Context, assetID string, req dto.UpdateAssetRequest) (*domain.Asset, error)
}

// AssetSvcFacade combines all asset-related service interfaces
type AssetSvcFacade interface {
	AssetReaderSvc
	AssetWriterSvc
}
