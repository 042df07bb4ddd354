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
)

type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	accountRepo     portsrepo.AccountReader
	clock           clock.Clock
}

// NewTransactionService creates the transaction service.
func NewTransactionService(transactionRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountReader, clk clock.Clock) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		clock:           clk,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
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

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Type:          domain.TransactionType(req.Type),
		Amount:        req.Amount,
		Description:   req.Description,
		Date:          date,
		Category:      req.Category,
		AccountID:     req.AccountID,
		CreatedAt:     s.clock.Now(),
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "failed to save transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	s.LogInfo(ctx, "transaction recorded", slog.String("transaction_id", txn.TransactionID), slog.String("type", string(txn.Type)))
	return &txn, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		txn.Type = domain.TransactionType(*req.Type)
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, apperrors.ErrValidation
		}
		txn.Amount = *req.Amount
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		txn.Date = date
	}
	if req.Category != nil {
		txn.Category = *req.Category
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
		txn.AccountID = *req.AccountID
	}

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "failed to find transaction", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

// ListTransactions retrieves transactions matching the filter. An inverted
// date range matches nothing rather than failing.
func (s *transactionService) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return []domain.Transaction{}, nil
	}
	txns, err := s.transactionRepo.ListTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "failed to list transactions")
		return nil, err
	}
	return txns, nil
}
