package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quantilytix/qbeta-backend/internal/apperrors"
	"github.com/quantilytix/qbeta-backend/internal/core/domain"
	portssvc "github.com/quantilytix/qbeta-backend/internal/core/ports/services"
	"github.com/quantilytix/qbeta-backend/internal/dto"
	"github.com/quantilytix/qbeta-backend/internal/handlers"
	"github.com/quantilytix/qbeta-backend/internal/platform/config"
	"github.com/quantilytix/qbeta-backend/internal/utils/clock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock DepreciationService ---
type MockDepreciationService struct {
	mock.Mock
}

func (m *MockDepreciationService) Run(ctx context.Context, asOf time.Time) (*domain.DepreciationRunResult, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DepreciationRunResult), args.Error(1)
}

var _ portssvc.DepreciationService = (*MockDepreciationService)(nil)

type DepreciationHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockDepreciationService
}

func (suite *DepreciationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockService = new(MockDepreciationService)

	cfg := &config.Config{DepreciationRateLimit: "100-M"}
	container := &portssvc.ServiceContainer{Depreciation: suite.mockService}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, container, clock.Fixed(time.Date(2023, time.April, 20, 0, 0, 0, 0, time.UTC)))
}

func (suite *DepreciationHandlerTestSuite) postRun(body any) *httptest.ResponseRecorder {
	raw, err := json.Marshal(body)
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/depreciation/run", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *DepreciationHandlerTestSuite) TestRunDepreciation_Success() {
	asOf := time.Date(2023, time.April, 15, 0, 0, 0, 0, time.UTC)
	result := &domain.DepreciationRunResult{
		TotalDepreciationExpense: decimal.NewFromInt(800),
		DepreciatedAssets: []domain.DepreciatedAsset{
			{AssetID: "asset-1", Amount: decimal.NewFromInt(800), TransactionID: "txn-1"},
		},
	}
	suite.mockService.On("Run", mock.Anything, asOf).Return(result, nil).Once()

	w := suite.postRun(dto.RunDepreciationRequest{AsOfDate: "2023-04-15"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DepreciationRunResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.TotalDepreciationExpense.Equal(decimal.NewFromInt(800)))
	suite.Require().Len(resp.DepreciatedAssets, 1)
	suite.Equal("asset-1", resp.DepreciatedAssets[0].AssetID)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *DepreciationHandlerTestSuite) TestRunDepreciation_MissingDate() {
	w := suite.postRun(map[string]string{})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "Run", mock.Anything, mock.Anything)
}

func (suite *DepreciationHandlerTestSuite) TestRunDepreciation_BadDateFormat() {
	w := suite.postRun(dto.RunDepreciationRequest{AsOfDate: "15/04/2023"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "Run", mock.Anything, mock.Anything)
}

func (suite *DepreciationHandlerTestSuite) TestRunDepreciation_ConfigurationError() {
	suite.mockService.On("Run", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrConfiguration).Once()

	w := suite.postRun(dto.RunDepreciationRequest{AsOfDate: "2023-04-15"})

	suite.Equal(http.StatusInternalServerError, w.Code)
}

func TestDepreciationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DepreciationHandlerTestSuite))
}
