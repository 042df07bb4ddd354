package services

import (
	"context"
	"time"

	"github.com/quantilytix/qbeta-backend/internal/core/accounting"
	"github.com/quantilytix/qbeta-backend/internal/core/domain"
	portsrepo "github.com/quantilytix/qbeta-backend/internal/core/ports/repositories"
	portssvc "github.com/quantilytix/qbeta-backend/internal/core/ports/services"
)

type reportingService struct {
	BaseService
	accountRepo     portsrepo.AccountReader
	transactionRepo portsrepo.TransactionReader
	assetRepo       portsrepo.AssetReader
	balanceRule     accounting.NormalBalanceRule
	classifier      *accounting.Classifier
}

// NewReportingService creates the reporting service. All reports are pure
// functions of the rows fetched here; nothing is cached between calls.
func NewReportingService(repos portsrepo.RepositoryProvider, rule accounting.NormalBalanceRule, classifier *accounting.Classifier) portssvc.ReportingService {
	return &reportingService{
		accountRepo:     repos.AccountRepo,
		transactionRepo: repos.TransactionRepo,
		assetRepo:       repos.AssetRepo,
		balanceRule:     rule,
		classifier:      classifier,
	}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalanceReport, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to load accounts for trial balance")
		return nil, err
	}
	txns, err := s.transactionRepo.ListTransactionsThrough(ctx, asOf)
	if err != nil {
		s.LogError(ctx, err, "failed to load transactions for trial balance")
		return nil, err
	}
	return accounting.BuildTrialBalance(s.balanceRule, accounts, txns, asOf)
}

func (s *reportingService) IncomeStatement(ctx context.Context, from, to time.Time) (*domain.IncomeStatementReport, error) {
	txns, err := s.transactionRepo.ListTransactionsThrough(ctx, to)
	if err != nil {
		s.LogError(ctx, err, "failed to load transactions for income statement")
		return nil, err
	}
	return accounting.BuildIncomeStatement(txns, from, to), nil
}

func (s *reportingService) BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheetReport, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to load accounts for balance sheet")
		return nil, err
	}
	txns, err := s.transactionRepo.ListTransactionsThrough(ctx, asOf)
	if err != nil {
		s.LogError(ctx, err, "failed to load transactions for balance sheet")
		return nil, err
	}
	assets, err := s.assetRepo.ListAssetsReceivedBy(ctx, asOf)
	if err != nil {
		s.LogError(ctx, err, "failed to load assets for balance sheet")
		return nil, err
	}
	return accounting.BuildBalanceSheet(s.balanceRule, s.classifier, accounts, txns, assets, asOf)
}

func (s *reportingService) CashFlowStatement(ctx context.Context, from, to time.Time) (*domain.CashFlowReport, error) {
	txns, err := s.transactionRepo.ListTransactionsThrough(ctx, to)
	if err != nil {
		s.LogError(ctx, err, "failed to load transactions for cash flow statement")
		return nil, err
	}
	return accounting.BuildCashFlow(s.classifier, txns, from, to), nil
}
