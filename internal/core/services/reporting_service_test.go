package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/quantilytix/qbeta-backend/internal/core/accounting"
	"github.com/quantilytix/qbeta-backend/internal/core/domain"
	portsrepo "github.com/quantilytix/qbeta-backend/internal/core/ports/repositories"
	portssvc "github.com/quantilytix/qbeta-backend/internal/core/ports/services"
	"github.com/quantilytix/qbeta-backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockAccountRepo     *MockAccountRepository
	mockTransactionRepo *MockTransactionRepository
	mockAssetRepo       *MockAssetRepository
	service             portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockTransactionRepo = new(MockTransactionRepository)
	suite.mockAssetRepo = new(MockAssetRepository)
	repos := portsrepo.RepositoryProvider{
		AccountRepo:     suite.mockAccountRepo,
		TransactionRepo: suite.mockTransactionRepo,
		AssetRepo:       suite.mockAssetRepo,
	}
	suite.service = services.NewReportingService(repos, accounting.SingleEntryRule{}, accounting.NewClassifier())
}

func (suite *ReportingServiceTestSuite) TestTrialBalance() {
	ctx := context.Background()
	asOf := time.Date(2023, time.June, 30, 0, 0, 0, 0, time.UTC)

	accounts := []domain.Account{
		{AccountID: "acc-bank", Name: "Business Bank Account", Type: domain.AccountTypeAsset},
		{AccountID: "acc-sales", Name: "Sales", Type: domain.AccountTypeIncome},
	}
	txns := []domain.Transaction{
		{TransactionID: "t1", Type: domain.TransactionIncome, Amount: decimal.NewFromInt(500), Category: "Sales Revenue", Description: "Invoice 1", AccountID: "acc-sales", Date: time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC)},
		{TransactionID: "t2", Type: domain.TransactionExpense, Amount: decimal.NewFromInt(300), AccountID: "acc-bank", Date: time.Date(2023, time.May, 2, 0, 0, 0, 0, time.UTC)},
	}

	suite.mockAccountRepo.On("ListAccounts", ctx).Return(accounts, nil).Once()
	suite.mockTransactionRepo.On("ListTransactionsThrough", ctx, asOf).Return(txns, nil).Once()

	report, err := suite.service.TrialBalance(ctx, asOf)

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.Equal(asOf, report.AsOf)
	// Income account txn nets to the credit column, asset txn to debit.
	suite.True(report.TotalCredit.Equal(decimal.NewFromInt(500)))
	suite.True(report.TotalDebit.Equal(decimal.NewFromInt(300)))
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestIncomeStatement() {
	ctx := context.Background()
	from := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)

	txns := []domain.Transaction{
		{TransactionID: "t1", Type: domain.TransactionIncome, Amount: decimal.NewFromInt(1000), Category: "Sales Revenue", Date: time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{TransactionID: "t2", Type: domain.TransactionExpense, Amount: decimal.NewFromInt(400), Category: "Cost of Goods Sold", Date: time.Date(2023, time.March, 5, 0, 0, 0, 0, time.UTC)},
	}

	suite.mockTransactionRepo.On("ListTransactionsThrough", ctx, to).Return(txns, nil).Once()

	report, err := suite.service.IncomeStatement(ctx, from, to)

	suite.Require().NoError(err)
	suite.True(report.TotalSales.Equal(decimal.NewFromInt(1000)))
	suite.True(report.CostOfGoodsSold.Equal(decimal.NewFromInt(400)))
	suite.True(report.GrossProfit.Equal(decimal.NewFromInt(600)))
	suite.True(report.NetProfitLoss.Equal(decimal.NewFromInt(600)))
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet() {
	ctx := context.Background()
	asOf := time.Date(2023, time.June, 30, 0, 0, 0, 0, time.UTC)

	accounts := []domain.Account{
		{AccountID: "acc-bank", Name: "Business Bank Account", Type: domain.AccountTypeAsset},
	}
	txns := []domain.Transaction{
		{TransactionID: "t1", Type: domain.TransactionExpense, Amount: decimal.NewFromInt(2500), AccountID: "acc-bank", Date: time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC)},
		{TransactionID: "t2", Type: domain.TransactionIncome, Amount: decimal.NewFromInt(3000), Date: time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)},
	}
	assets := []domain.Asset{
		{
			AssetID:                 "asset-1",
			Name:                    "Delivery Van",
			Cost:                    decimal.NewFromInt(12000),
			AccumulatedDepreciation: decimal.NewFromInt(800),
			DateReceived:            time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	suite.mockAccountRepo.On("ListAccounts", ctx).Return(accounts, nil).Once()
	suite.mockTransactionRepo.On("ListTransactionsThrough", ctx, asOf).Return(txns, nil).Once()
	suite.mockAssetRepo.On("ListAssetsReceivedBy", ctx, asOf).Return(assets, nil).Once()

	report, err := suite.service.BalanceSheet(ctx, asOf)

	suite.Require().NoError(err)
	suite.True(report.NetFixedAssets.Equal(decimal.NewFromInt(11200)))
	suite.True(report.TotalCurrentAssets.Equal(decimal.NewFromInt(2500)))
	suite.True(report.TotalAssets.Equal(decimal.NewFromInt(13700)))
	// Retained earnings is the signed sum of every transaction: 3000 - 2500.
	suite.True(report.RetainedEarnings.Equal(decimal.NewFromInt(500)))
	suite.mockAssetRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestCashFlowStatement() {
	ctx := context.Background()
	from := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)

	txns := []domain.Transaction{
		{TransactionID: "t1", Type: domain.TransactionIncome, Amount: decimal.NewFromInt(1000), Category: "Sales Revenue", Date: time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{TransactionID: "t2", Type: domain.TransactionExpense, Amount: decimal.NewFromInt(4000), Category: "Equipment Purchase", Date: time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC)},
		{TransactionID: "t3", Type: domain.TransactionIncome, Amount: decimal.NewFromInt(6000), Category: "Bank Loan", Date: time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC)},
	}

	suite.mockTransactionRepo.On("ListTransactionsThrough", ctx, to).Return(txns, nil).Once()

	report, err := suite.service.CashFlowStatement(ctx, from, to)

	suite.Require().NoError(err)
	suite.True(report.TotalOperating.Equal(decimal.NewFromInt(1000)))
	suite.True(report.TotalInvesting.Equal(decimal.NewFromInt(-4000)))
	suite.True(report.TotalFinancing.Equal(decimal.NewFromInt(6000)))
	suite.True(report.NetChangeInCash.Equal(decimal.NewFromInt(3000)))
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
