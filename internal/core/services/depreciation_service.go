package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/quantilytix/qbeta-backend/internal/apperrors"
	"github.com/quantilytix/qbeta-backend/internal/core/accounting"
	"github.com/quantilytix/qbeta-backend/internal/core/domain"
	portsrepo "github.com/quantilytix/qbeta-backend/internal/core/ports/repositories"
	portssvc "github.com/quantilytix/qbeta-backend/internal/core/ports/services"
	"github.com/quantilytix/qbeta-backend/internal/utils/clock"
	"github.com/shopspring/decimal"
)

// depreciationCategory labels the expense transactions a run generates so
// they group under one income statement line.
const depreciationCategory = "Depreciation Expense"

// expenseAccountNames are tried in order when resolving the account that
// receives depreciation expense transactions.
var expenseAccountNames = []string{"Depreciation Expense", "Other Expenses"}

type depreciationService struct {
	BaseService
	assetRepo   portsrepo.AssetRepositoryFacade
	accountRepo portsrepo.AccountReader
	clock       clock.Clock
}

// NewDepreciationService creates the depreciation run service.
func NewDepreciationService(assetRepo portsrepo.AssetRepositoryFacade, accountRepo portsrepo.AccountReader, clk clock.Clock) portssvc.DepreciationService {
	return &depreciationService{
		assetRepo:   assetRepo,
		accountRepo: accountRepo,
		clock:       clk,
	}
}

var _ portssvc.DepreciationService = (*depreciationService)(nil)

// Run schedules straight-line depreciation for every eligible asset up to
// asOf and persists the whole run atomically. Nothing is written before the
// expense account resolves; a run that cannot post anywhere posts nothing.
func (s *depreciationService) Run(ctx context.Context, asOf time.Time) (*domain.DepreciationRunResult, error) {
	expenseAccount, err := s.accountRepo.FindAccountByNames(ctx, expenseAccountNames)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: no depreciation expense account found, create an account named %q", apperrors.ErrConfiguration, expenseAccountNames[0])
		}
		return nil, err
	}

	assets, err := s.assetRepo.ListDepreciableAssets(ctx, asOf)
	if err != nil {
		s.LogError(ctx, err, "failed to list depreciable assets")
		return nil, err
	}

	now := s.clock.Now()
	postings := make([]domain.DepreciationPosting, 0, len(assets))
	depreciated := make([]domain.DepreciatedAsset, 0, len(assets))
	total := decimal.Zero

	for _, asset := range assets {
		period, err := accounting.ScheduleDepreciation(asset, asOf)
		if err != nil {
			return nil, err
		}
		if period.Skip {
			continue
		}

		txn := domain.Transaction{
			TransactionID: uuid.NewString(),
			Type:          domain.TransactionExpense,
			Amount:        period.Amount,
			Description:   fmt.Sprintf("Depreciation Expense for %s (ID: %s)", asset.Name, asset.AssetID),
			Date:          period.End,
			Category:      depreciationCategory,
			AccountID:     expenseAccount.AccountID,
			CreatedAt:     now,
		}
		entry := domain.DepreciationEntry{
			EntryID:          uuid.NewString(),
			AssetID:          asset.AssetID,
			DepreciationDate: period.End,
			Amount:           period.Amount,
			TransactionID:    txn.TransactionID,
		}
		postings = append(postings, domain.DepreciationPosting{
			AssetID:                    asset.AssetID,
			NewAccumulatedDepreciation: asset.AccumulatedDepreciation.Add(period.Amount),
			NewLastDepreciationDate:    period.End,
			Transaction:                txn,
			Entry:                      entry,
		})
		depreciated = append(depreciated, domain.DepreciatedAsset{
			AssetID:       asset.AssetID,
			Amount:        period.Amount,
			TransactionID: txn.TransactionID,
		})
		total = total.Add(period.Amount)
	}

	if err := s.assetRepo.RecordDepreciationRun(ctx, postings); err != nil {
		s.LogError(ctx, err, "failed to record depreciation run", slog.Int("postings", len(postings)))
		return nil, err
	}

	s.LogInfo(ctx, "depreciation run complete",
		slog.Time("as_of", asOf),
		slog.Int("assets_depreciated", len(depreciated)),
		slog.String("total_expense", total.String()),
	)

	return &domain.DepreciationRunResult{
		TotalDepreciationExpense: total,
		DepreciatedAssets:        depreciated,
	}, nil
}
