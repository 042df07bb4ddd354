package repositories

import (
	"context"
	"time"

	"github.com/quantilytix/qbeta-backend/internal/core/domain"
)

// TransactionFilter narrows a transaction listing. Zero values mean "no
// constraint". Search matches description, type or account name.
type TransactionFilter struct {
	Category string
	Search   string
	From     *time.Time
	To       *time.Time
}

// TransactionReader defines read operations for ledger transactions.
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves transactions matching the filter, most
	// recent first.
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, error)

	// ListTransactionsThrough retrieves every transaction dated on or
	// before asOf, for point-in-time reports.
	ListTransactionsThrough(ctx context.Context, asOf time.Time) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for ledger transactions.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction updates an existing transaction's details.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
