package services

import (
	"context"
	"time"

	"github.com/quantilytix/qbeta-backend/internal/core/domain"
)

// DepreciationService defines the straight-line depreciation run.
type DepreciationService interface {
	// Run advances every depreciable asset to asOf, records the resulting
	// expense transactions and ledger entries atomically, and reports what
	// was posted. Assets already caught up are left untouched; running twice
	// with the same asOf posts nothing on the second call.
	Run(ctx context.Context, asOf time.Time) (*domain.DepreciationRunResult, error)
}
