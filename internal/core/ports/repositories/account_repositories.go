package repositories

import (
	"context"

	"github.com/quantilytix/qbeta-backend/internal/core/domain"
)

// AccountReader defines read operations for the chart of accounts.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves every account, ordered by code.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// FindAccountByNames retrieves the first account whose name matches any
	// of the given names, case-insensitively. Returns apperrors.ErrNotFound
	// when no account matches.
	FindAccountByNames(ctx context.Context, names []string) (*domain.Account, error)
}

// AccountWriter defines write operations for the chart of accounts.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error
}

// AccountRepositoryFacade combines all account repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
