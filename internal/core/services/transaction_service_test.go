package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/quantilytix/qbeta-backend/internal/apperrors"
	"github.com/quantilytix/qbeta-backend/internal/core/domain"
	portsrepo "github.com/quantilytix/qbeta-backend/internal/core/ports/repositories"
	portssvc "github.com/quantilytix/qbeta-backend/internal/core/ports/services"
	"github.com/quantilytix/qbeta-backend/internal/core/services"
	"github.com/quantilytix/qbeta-backend/internal/dto"
	"github.com/quantilytix/qbeta-backend/internal/utils/clock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTransactionRepo *MockTransactionRepository
	mockAccountRepo     *MockAccountRepository
	service             portssvc.TransactionSvcFacade
	now                 time.Time
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTransactionRepo = new(MockTransactionRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.now = time.Date(2023, time.June, 1, 9, 0, 0, 0, time.UTC)
	suite.service = services.NewTransactionService(suite.mockTransactionRepo, suite.mockAccountRepo, clock.Fixed(suite.now))
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:        "income",
		Amount:      decimal.NewFromInt(250),
		Description: "Consulting fee",
		Date:        "2023-05-20",
		Category:    "Sales Revenue",
	}

	suite.mockTransactionRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Type == domain.TransactionIncome &&
			txn.Amount.Equal(decimal.NewFromInt(250)) &&
			txn.Date.Equal(time.Date(2023, time.May, 20, 0, 0, 0, 0, time.UTC)) &&
			txn.TransactionID != ""
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal("Consulting fee", txn.Description)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_BadDate() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{Type: "income", Amount: decimal.NewFromInt(10), Date: "20-05-2023"}

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(txn)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{Type: "expense", Amount: decimal.Zero, Date: "2023-05-20"}

	_, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_UnknownAccountRejected() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{Type: "expense", Amount: decimal.NewFromInt(10), Date: "2023-05-20", AccountID: "nope"}

	suite.mockAccountRepo.On("FindAccountByID", ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_PartialFields() {
	ctx := context.Background()
	existing := &domain.Transaction{
		TransactionID: "t1",
		Type:          domain.TransactionExpense,
		Amount:        decimal.NewFromInt(100),
		Description:   "Old description",
		Date:          time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC),
		Category:      "Office Rent",
	}
	newAmount := decimal.NewFromInt(150)
	req := dto.UpdateTransactionRequest{Amount: &newAmount}

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, "t1").Return(existing, nil).Once()
	suite.mockTransactionRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.TransactionID == "t1" &&
			txn.Amount.Equal(newAmount) &&
			txn.Description == "Old description" &&
			txn.Category == "Office Rent"
	})).Return(nil).Once()

	txn, err := suite.service.UpdateTransaction(ctx, "t1", req)

	suite.Require().NoError(err)
	suite.True(txn.Amount.Equal(newAmount))
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_InvertedRangeIsEmpty() {
	ctx := context.Background()
	from := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	filter := portsrepo.TransactionFilter{From: &from, To: &to}

	txns, err := suite.service.ListTransactions(ctx, filter)

	suite.Require().NoError(err)
	suite.Empty(txns)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
