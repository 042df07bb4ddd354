package repositories

import (
	"context"
	"time"

	"github.com/quantilytix/qbeta-backend/internal/core/domain"
)

// AssetReader defines read operations for fixed assets.
type AssetReader interface {
	// FindAssetByID retrieves a specific asset.
	FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error)

	// ListAssets retrieves every asset, ordered by name.
	ListAssets(ctx context.Context) ([]domain.Asset, error)

	// ListAssetsReceivedBy retrieves assets received on or before asOf, for
	// the balance sheet's non-current assets section.
	ListAssetsReceivedBy(ctx context.Context, asOf time.Time) ([]domain.Asset, error)

	// ListDepreciableAssets retrieves straight-line assets with a positive
	// useful life whose last depreciation date is null or earlier than asOf.
	ListDepreciableAssets(ctx context.Context, asOf time.Time) ([]domain.Asset, error)
}

// AssetWriter defines write operations for fixed assets.
type AssetWriter interface {
	// SaveAsset persists a new asset.
	SaveAsset(ctx context.Context, asset domain.Asset) error

	// UpdateAsset updates an existing asset's details.
	UpdateAsset(ctx context.Context, asset domain.Asset) error
}

// DepreciationWriter persists the outcome of a depreciation run.
type DepreciationWriter interface {
	// RecordDepreciationRun applies every posting inside one database
	// transaction: asset state updates, expense transactions and audit
	// entries all land together or not at all.
	RecordDepreciationRun(ctx context.Context, postings []domain.DepreciationPosting) error
}

// AssetRepositoryFacade combines all asset repository interfaces.
type AssetRepositoryFacade interface {
	AssetReader
	AssetWriter
	DepreciationWriter
}
