package services

import (
	"context"
	"time"

	"github.com/quantilytix/qbeta-backend/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// TrialBalance generates a trial balance report as of a specific date
	TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalanceReport, error)

	// IncomeStatement generates an income statement for a specific period
	IncomeStatement(ctx context.Context, from, to time.Time) (*domain.IncomeStatementReport, error)

	// BalanceSheet generates a balance sheet report as of a specific date
	BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheetReport, error)

	// CashFlowStatement classifies period cash movements into operating,
	// investing and financing activities
	CashFlowStatement(ctx context.Context, from, to time.Time) (*domain.CashFlowReport, error)
}
