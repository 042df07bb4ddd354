package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quantilytix/qbeta-backend/internal/apperrors"
	"github.com/quantilytix/qbeta-backend/internal/core/domain"
	portsrepo "github.com/quantilytix/qbeta-backend/internal/core/ports/repositories"
	"github.com/quantilytix/qbeta-backend/internal/models"
)

type PgxAssetRepository struct {
	BaseRepository
}

// newPgxAssetRepository creates a new repository for fixed asset data.
func newPgxAssetRepository(pool *pgxpool.Pool) portsrepo.AssetRepositoryFacade {
	return &PgxAssetRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AssetRepositoryFacade = (*PgxAssetRepository)(nil)

func toModelAsset(d domain.Asset) models.Asset {
	return models.Asset{
		AssetID:                 d.AssetID,
		Name:                    d.Name,
		Cost:                    d.Cost,
		DateReceived:            d.DateReceived,
		AccountID:               d.AccountID,
		DepreciationMethod:      string(d.DepreciationMethod),
		UsefulLifeYears:         d.UsefulLifeYears,
		SalvageValue:            d.SalvageValue,
		AccumulatedDepreciation: d.AccumulatedDepreciation,
		LastDepreciationDate:    d.LastDepreciationDate,
		CreatedAt:               d.CreatedAt,
	}
}

func toDomainAsset(m models.Asset) domain.Asset {
	return domain.Asset{
		AssetID:                 m.AssetID,
		Name:                    m.Name,
		Cost:                    m.Cost,
		DateReceived:            m.DateReceived,
		AccountID:               m.AccountID,
		DepreciationMethod:      domain.DepreciationMethod(m.DepreciationMethod),
		UsefulLifeYears:         m.UsefulLifeYears,
		SalvageValue:            m.SalvageValue,
		AccumulatedDepreciation: m.AccumulatedDepreciation,
		LastDepreciationDate:    m.LastDepreciationDate,
		CreatedAt:               m.CreatedAt,
	}
}

const assetColumns = `asset_id, name, cost, date_received, account_id, depreciation_method, useful_life_years, salvage_value, accumulated_depreciation, last_depreciation_date, created_at`

func scanAsset(row pgx.Row) (models.Asset, error) {
	var m models.Asset
	var accountID sql.NullString
	err := row.Scan(
		&m.AssetID,
		&m.Name,
		&m.Cost,
		&m.DateReceived,
		&accountID,
		&m.DepreciationMethod,
		&m.UsefulLifeYears,
		&m.SalvageValue,
		&m.AccumulatedDepreciation,
		&m.LastDepreciationDate,
		&m.CreatedAt,
	)
	if err != nil {
		return models.Asset{}, err
	}
	m.AccountID = accountID.String
	return m, nil
}

// SaveAsset inserts a new asset.
func (r *PgxAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	m := toModelAsset(asset)

	query := `
		INSERT INTO assets (asset_id, name, cost, date_received, account_id, depreciation_method, useful_life_years, salvage_value, accumulated_depreciation, last_depreciation_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AssetID,
		m.Name,
		m.Cost,
		m.DateReceived,
		nullString(m.AccountID),
		m.DepreciationMethod,
		m.UsefulLifeYears,
		m.SalvageValue,
		m.AccumulatedDepreciation,
		m.LastDepreciationDate,
		m.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // Unique violation
				return fmt.Errorf("%w: asset with ID %s already exists", apperrors.ErrDuplicate, m.AssetID)
			case "23503": // Foreign key violation
				return fmt.Errorf("%w: account %s does not exist", apperrors.ErrValidation, m.AccountID)
			}
		}
		return fmt.Errorf("failed to save asset %s: %w", m.AssetID, err)
	}
	return nil
}

// UpdateAsset updates the mutable fields of an existing asset.
func (r *PgxAssetRepository) UpdateAsset(ctx context.Context, asset domain.Asset) error {
	m := toModelAsset(asset)

	query := `
		UPDATE assets
		SET name = $2, cost = $3, date_received = $4, account_id = $5, depreciation_method = $6, useful_life_years = $7, salvage_value = $8, accumulated_depreciation = $9, last_depreciation_date = $10
		WHERE asset_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.AssetID,
		m.Name,
		m.Cost,
		m.DateReceived,
		nullString(m.AccountID),
		m.DepreciationMethod,
		m.UsefulLifeYears,
		m.SalvageValue,
		m.AccumulatedDepreciation,
		m.LastDepreciationDate,
	)
	if err != nil {
		return fmt.Errorf("failed to update asset %s: %w", m.AssetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindAssetByID retrieves an asset by its ID.
func (r *PgxAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	query := `
		SELECT ` + assetColumns + `
		FROM assets
		WHERE asset_id = $1;
	`
	m, err := scanAsset(r.Pool.QueryRow(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find asset by ID %s: %w", assetID, err)
	}
	d := toDomainAsset(m)
	return &d, nil
}

// ListAssets retrieves every asset ordered by name.
func (r *PgxAssetRepository) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	query := `
		SELECT ` + assetColumns + `
		FROM assets
		ORDER BY name;
	`
	return r.queryAssets(ctx, query)
}

// ListAssetsReceivedBy retrieves assets received on or before asOf.
func (r *PgxAssetRepository) ListAssetsReceivedBy(ctx context.Context, asOf time.Time) ([]domain.Asset, error) {
	query := `
		SELECT ` + assetColumns + `
		FROM assets
		WHERE date_received <= $1
		ORDER BY name;
	`
	return r.queryAssets(ctx, query, asOf)
}

// ListDepreciableAssets retrieves straight-line assets that may still need
// depreciation posted up to asOf.
func (r *PgxAssetRepository) ListDepreciableAssets(ctx context.Context, asOf time.Time) ([]domain.Asset, error) {
	query := `
		SELECT ` + assetColumns + `
		FROM assets
		WHERE depreciation_method = 'straight-line'
		  AND useful_life_years > 0
		  AND date_received <= $1
		  AND (last_depreciation_date IS NULL OR last_depreciation_date < $1)
		ORDER BY name;
	`
	return r.queryAssets(ctx, query, asOf)
}

func (r *PgxAssetRepository) queryAssets(ctx context.Context, query string, args ...any) ([]domain.Asset, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	defer rows.Close()

	assets := []domain.Asset{}
	for rows.Next() {
		m, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset row: %w", err)
		}
		assets = append(assets, toDomainAsset(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating asset rows: %w", err)
	}
	return assets, nil
}

// RecordDepreciationRun applies every posting inside a single database
// transaction. The expense transactions, depreciation entries and asset state
// advances either all land or none do.
func (r *PgxAssetRepository) RecordDepreciationRun(ctx context.Context, postings []domain.DepreciationPosting) error {
	if len(postings) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // No-op once the transaction is committed

	batch := &pgx.Batch{}
	txnQuery := `
		INSERT INTO transactions (transaction_id, transaction_type, amount, description, transaction_date, category, account_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	entryQuery := `
		INSERT INTO depreciation_entries (entry_id, asset_id, depreciation_date, amount, transaction_id)
		VALUES ($1, $2, $3, $4, $5);
	`
	assetQuery := `
		UPDATE assets
		SET accumulated_depreciation = $2, last_depreciation_date = $3
		WHERE asset_id = $1;
	`
	for _, p := range postings {
		mTxn := toModelTransaction(p.Transaction)
		batch.Queue(txnQuery,
			mTxn.TransactionID,
			mTxn.Type,
			mTxn.Amount,
			mTxn.Description,
			mTxn.Date,
			nullString(mTxn.Category),
			nullString(mTxn.AccountID),
			mTxn.CreatedAt,
		)
		batch.Queue(entryQuery,
			p.Entry.EntryID,
			p.Entry.AssetID,
			p.Entry.DepreciationDate,
			p.Entry.Amount,
			p.Entry.TransactionID,
		)
		batch.Queue(assetQuery,
			p.AssetID,
			p.NewAccumulatedDepreciation,
			p.NewLastDepreciationDate,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to execute depreciation run batch: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return fmt.Errorf("failed to commit depreciation run: %w", err)
	}
	return nil
}
