package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/quantilytix/qbeta-backend/internal/apperrors"
	"github.com/quantilytix/qbeta-backend/internal/core/domain"
	portsrepo "github.com/quantilytix/qbeta-backend/internal/core/ports/repositories"
	portssvc "github.com/quantilytix/qbeta-backend/internal/core/ports/services"
	"github.com/quantilytix/qbeta-backend/internal/dto"
	"github.com/quantilytix/qbeta-backend/internal/utils/clock"
	"github.com/shopspring/decimal"
)

type assetService struct {
	BaseService
	assetRepo   portsrepo.AssetRepositoryFacade
	accountRepo portsrepo.AccountReader
	clock       clock.Clock
}

// NewAssetService creates the fixed asset service.
func NewAssetService(assetRepo portsrepo.AssetRepositoryFacade, accountRepo portsrepo.AccountReader, clk clock.Clock) portssvc.AssetSvcFacade {
	return &assetService{
		assetRepo:   assetRepo,
		accountRepo: accountRepo,
		clock:       clk,
	}
}

var _ portssvc.AssetSvcFacade = (*assetService)(nil)

func (s *assetService) CreateAsset(ctx context.Context, req dto.CreateAssetRequest) (*domain.Asset, error) {
	dateReceived, err := parseDate(req.DateReceived)
	if err != nil {
		return nil, err
	}
	if !req.Cost.IsPositive() {
		return nil, apperrors.ErrValidation
	}
	if req.SalvageValue.IsNegative() || req.SalvageValue.GreaterThan(req.Cost) {
		return nil, apperrors.ErrValidation
	}
	if req.UsefulLifeYears < 0 {
		return nil, apperrors.ErrValidation
	}
	if req.AccountID != "" {
		if _, err := s.accountRepo.FindAccountByID(ctx, req.AccountID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.ErrValidation
			}
			return nil, err
		}
	}

	asset := domain.Asset{
		AssetID:                 uuid.NewString(),
		Name:                    req.Name,
		Cost:                    req.Cost,
		DateReceived:            dateReceived,
		AccountID:               req.AccountID,
		DepreciationMethod:      domain.DepreciationMethod(req.DepreciationMethod),
		UsefulLifeYears:         req.UsefulLifeYears,
		SalvageValue:            req.SalvageValue,
		AccumulatedDepreciation: decimal.Zero,
		CreatedAt:               s.clock.Now(),
	}

	if err := s.assetRepo.SaveAsset(ctx, asset); err != nil {
		s.LogError(ctx, err, "failed to save asset", slog.String("asset_id", asset.AssetID))
		return nil, err
	}

	s.LogInfo(ctx, "asset registered", slog.String("asset_id", asset.AssetID), slog.String("name", asset.Name))
	return &asset, nil
}

func (s *assetService) UpdateAsset(ctx context.Context, assetID string, req dto.UpdateAssetRequest) (*domain.Asset, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		asset.Name = *req.Name
	}
	if req.Cost != nil {
		if !req.Cost.IsPositive() {
			return nil, apperrors.ErrValidation
		}
		asset.Cost = *req.Cost
	}
	if req.DateReceived != nil {
		dateReceived, err := parseDate(*req.DateReceived)
		if err != nil {
			return nil, err
		}
		asset.DateReceived = dateReceived
	}
	if req.AccountID != nil {
		if *req.AccountID != "" {
			if _, err := s.accountRepo.FindAccountByID(ctx, *req.AccountID); err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return nil, apperrors.ErrValidation
				}
				return nil, err
			}
		}
		asset.AccountID = *req.AccountID
	}
	if req.DepreciationMethod != nil {
		asset.DepreciationMethod = domain.DepreciationMethod(*req.DepreciationMethod)
	}
	if req.UsefulLifeYears != nil {
		if *req.UsefulLifeYears < 0 {
			return nil, apperrors.ErrValidation
		}
		asset.UsefulLifeYears = *req.UsefulLifeYears
	}
	if req.SalvageValue != nil {
		if req.SalvageValue.IsNegative() || req.SalvageValue.GreaterThan(asset.Cost) {
			return nil, apperrors.ErrValidation
		}
		asset.SalvageValue = *req.SalvageValue
	}

	if err := s.assetRepo.UpdateAsset(ctx, *asset); err != nil {
		s.LogError(ctx, err, "failed to update asset", slog.String("asset_id", assetID))
		return nil, err
	}
	return asset, nil
}

func (s *assetService) GetAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "failed to find asset", slog.String("asset_id", assetID))
		}
		return nil, err
	}
	return asset, nil
}

func (s *assetService) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	assets, err := s.assetRepo.ListAssets(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list assets")
		return nil, err
	}
	return assets, nil
}
