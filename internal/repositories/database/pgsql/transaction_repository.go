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

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func toModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		Type:          string(d.Type),
		Amount:        d.Amount,
		Description:   d.Description,
		Date:          d.Date,
		Category:      d.Category,
		AccountID:     d.AccountID,
		CreatedAt:     d.CreatedAt,
	}
}

func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		Type:          domain.TransactionType(m.Type),
		Amount:        m.Amount,
		Description:   m.Description,
		Date:          m.Date,
		Category:      m.Category,
		AccountID:     m.AccountID,
		CreatedAt:     m.CreatedAt,
	}
}

const transactionColumns = `transaction_id, transaction_type, amount, description, transaction_date, category, account_id, created_at`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	var category, accountID sql.NullString
	err := row.Scan(
		&m.TransactionID,
		&m.Type,
		&m.Amount,
		&m.Description,
		&m.Date,
		&category,
		&accountID,
		&m.CreatedAt,
	)
	if err != nil {
		return models.Transaction{}, err
	}
	m.Category = category.String
	m.AccountID = accountID.String
	return m, nil
}

// SaveTransaction inserts a new transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)

	query := `
		INSERT INTO transactions (transaction_id, transaction_type, amount, description, transaction_date, category, account_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.Type,
		m.Amount,
		m.Description,
		m.Date,
		nullString(m.Category),
		nullString(m.AccountID),
		m.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // Unique violation
				return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, m.TransactionID)
			case "23503": // Foreign key violation
				return fmt.Errorf("%w: account %s does not exist", apperrors.ErrValidation, m.AccountID)
			}
		}
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// UpdateTransaction updates the mutable fields of an existing transaction.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)

	query := `
		UPDATE transactions
		SET transaction_type = $2, amount = $3, description = $4, transaction_date = $5, category = $6, account_id = $7
		WHERE transaction_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.Type,
		m.Amount,
		m.Description,
		m.Date,
		nullString(m.Category),
		nullString(m.AccountID),
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1;
	`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	d := toDomainTransaction(m)
	return &d, nil
}

// ListTransactions retrieves transactions matching the filter, newest first.
// Search matches the description, the transaction type or the name of the
// linked account.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	query := `
		SELECT t.transaction_id, t.transaction_type, t.amount, t.description, t.transaction_date, t.category, t.account_id, t.created_at
		FROM transactions t
		LEFT JOIN accounts a ON a.account_id = t.account_id
		WHERE 1=1
	`
	args := []any{}
	idx := 1
	if filter.Category != "" {
		query += fmt.Sprintf(" AND t.category = $%d", idx)
		args = append(args, filter.Category)
		idx++
	}
	if filter.Search != "" {
		query += fmt.Sprintf(" AND (t.description ILIKE $%d OR t.transaction_type ILIKE $%d OR a.name ILIKE $%d)", idx, idx, idx)
		args = append(args, "%"+filter.Search+"%")
		idx++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND t.transaction_date >= $%d", idx)
		args = append(args, *filter.From)
		idx++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND t.transaction_date <= $%d", idx)
		args = append(args, *filter.To)
		idx++
	}
	query += " ORDER BY t.transaction_date DESC, t.created_at DESC;"

	return r.queryTransactions(ctx, query, args...)
}

// ListTransactionsThrough retrieves every transaction dated on or before asOf.
func (r *PgxTransactionRepository) ListTransactionsThrough(ctx context.Context, asOf time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_date <= $1
		ORDER BY transaction_date, created_at;
	`
	return r.queryTransactions(ctx, query, asOf)
}

func (r *PgxTransactionRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, toDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}
