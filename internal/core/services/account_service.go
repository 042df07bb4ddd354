package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/quantilytix/qbeta-backend/internal/apperrors"
	"github.com/quantilytix/qbeta-backend/internal/core/accounting"
	"github.com/quantilytix/qbeta-backend/internal/core/domain"
	portsrepo "github.com/quantilytix/qbeta-backend/internal/core/ports/repositories"
	portssvc "github.com/quantilytix/qbeta-backend/internal/core/ports/services"
	"github.com/quantilytix/qbeta-backend/internal/dto"
	"github.com/quantilytix/qbeta-backend/internal/utils/clock"
	"github.com/shopspring/decimal"
)

type accountService struct {
	BaseService
	accountRepo     portsrepo.AccountRepositoryFacade
	transactionRepo portsrepo.TransactionReader
	balanceRule     accounting.NormalBalanceRule
	clock           clock.Clock
}

// NewAccountService creates the account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, transactionRepo portsrepo.TransactionReader, rule accounting.NormalBalanceRule, clk clock.Clock) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		balanceRule:     rule,
		clock:           clk,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	account := domain.Account{
		AccountID: uuid.NewString(),
		Name:      req.Name,
		Type:      domain.AccountType(req.Type),
		Code:      req.Code,
		Class:     domain.AccountClass(req.Class),
		CreatedAt: s.clock.Now(),
	}
	if !account.Type.IsValid() {
		return nil, apperrors.ErrValidation
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "failed to save account", slog.String("account_id", account.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "account created", slog.String("account_id", account.AccountID), slog.String("name", account.Name))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "failed to find account", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list accounts")
		return nil, err
	}
	return accounts, nil
}

// CalculateAccountBalance computes the account's signed balance from its
// transactions dated on or before asOf.
func (s *accountService) CalculateAccountBalance(ctx context.Context, accountID string, asOf time.Time) (decimal.Decimal, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	txns, err := s.transactionRepo.ListTransactionsThrough(ctx, asOf)
	if err != nil {
		s.LogError(ctx, err, "failed to load transactions for balance", slog.String("account_id", accountID))
		return decimal.Zero, err
	}

	balance, err := accounting.ComputeAccountBalance(s.balanceRule, *account, txns, asOf)
	if err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}
