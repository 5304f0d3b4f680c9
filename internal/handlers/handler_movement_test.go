package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/banking-ms/account-movement-service/internal/core/domain"
	"github.com/banking-ms/account-movement-service/internal/core/services"
	"github.com/banking-ms/account-movement-service/internal/dto"
	"github.com/banking-ms/account-movement-service/internal/handlers"
	"github.com/banking-ms/account-movement-service/pkg/config"
)

// --- Mock services ---

type MockMovementService struct {
	mock.Mock
}

func (m *MockMovementService) PostMovement(ctx context.Context, req dto.CreateMovementRequest) (*domain.Movement, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}

func (m *MockMovementService) CurrentBalance(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockMovementService) ListMovements(ctx context.Context) ([]domain.Movement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movement), args.Error(1)
}

func (m *MockMovementService) ListMovementsByAccountID(ctx context.Context, accountID int64) ([]domain.Movement, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movement), args.Error(1)
}

func (m *MockMovementService) ListMovementsByClientAndRange(ctx context.Context, clientID int64, from, to time.Time) ([]domain.Movement, error) {
	args := m.Called(ctx, clientID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movement), args.Error(1)
}

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByNumber(ctx context.Context, number string) (*domain.Account, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccountsByClientID(ctx context.Context, clientID int64) ([]domain.Account, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, accountID int64, req dto.UpdateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, accountID int64) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) AccountStatement(ctx context.Context, clientID int64, from, to time.Time) ([]domain.StatementLine, error) {
	args := m.Called(ctx, clientID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatementLine), args.Error(1)
}

// --- Test Suite Setup ---

type MovementHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockMovementSvc  *MockMovementService
	mockAccountSvc   *MockAccountService
	mockReportingSvc *MockReportingService
}

func (suite *MovementHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.mockMovementSvc = new(MockMovementService)
	suite.mockAccountSvc = new(MockAccountService)
	suite.mockReportingSvc = new(MockReportingService)

	suite.router = gin.New()
	cfg := &config.Config{IsProduction: true} // keeps swagger off the route table
	handlers.RegisterAccountServiceRoutes(suite.router, cfg, suite.mockAccountSvc, suite.mockMovementSvc, suite.mockReportingSvc)
}

func (suite *MovementHandlerTestSuite) postMovement(body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/movements", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *MovementHandlerTestSuite) TestCreateMovement_Success() {
	saved := &domain.Movement{
		MovementID:       1,
		AccountID:        1,
		Kind:             domain.Deposit,
		Amount:           decimal.NewFromInt(500),
		ResultingBalance: decimal.NewFromInt(2500),
		OccurredAt:       time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}
	suite.mockMovementSvc.On("PostMovement", mock.Anything, mock.AnythingOfType("dto.CreateMovementRequest")).
		Return(saved, nil).Once()

	w := suite.postMovement(gin.H{"accountID": 1, "kind": "DEPOSIT", "amount": "500"})

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.MovementResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(1), resp.MovementID)
	suite.True(resp.ResultingBalance.Equal(decimal.NewFromInt(2500)))
}

func (suite *MovementHandlerTestSuite) TestCreateMovement_MalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/movements", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockMovementSvc.AssertNotCalled(suite.T(), "PostMovement", mock.Anything, mock.Anything)
}

func (suite *MovementHandlerTestSuite) TestCreateMovement_AccountNotFound() {
	suite.mockMovementSvc.On("PostMovement", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: ID 42", services.ErrAccountNotFound)).Once()

	w := suite.postMovement(gin.H{"accountID": 42, "kind": "DEPOSIT", "amount": "500"})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *MovementHandlerTestSuite) TestCreateMovement_InsufficientBalance() {
	suite.mockMovementSvc.On("PostMovement", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: balance 100, requested 500", services.ErrInsufficientBalance)).Once()

	w := suite.postMovement(gin.H{"accountID": 1, "kind": "WITHDRAWAL", "amount": "500"})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *MovementHandlerTestSuite) TestCreateMovement_InactiveAccount() {
	suite.mockMovementSvc.On("PostMovement", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: ID 1", services.ErrAccountInactive)).Once()

	w := suite.postMovement(gin.H{"accountID": 1, "kind": "DEPOSIT", "amount": "500"})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *MovementHandlerTestSuite) TestCreateMovement_InternalErrorIsOpaque() {
	suite.mockMovementSvc.On("PostMovement", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("pq: connection refused")).Once()

	w := suite.postMovement(gin.H{"accountID": 1, "kind": "DEPOSIT", "amount": "500"})

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), "connection refused")
}

func (suite *MovementHandlerTestSuite) TestGetBalance_Success() {
	suite.mockMovementSvc.On("CurrentBalance", mock.Anything, int64(1)).
		Return(decimal.NewFromInt(2500), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/1/balance", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.BalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(1), resp.AccountID)
	suite.True(resp.Balance.Equal(decimal.NewFromInt(2500)))
}

func (suite *MovementHandlerTestSuite) TestGetBalance_NonNumericID() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/abc/balance", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockMovementSvc.AssertNotCalled(suite.T(), "CurrentBalance", mock.Anything, mock.Anything)
}

func (suite *MovementHandlerTestSuite) TestAccountStatement_RequiresRangeParams() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports?clientID=10", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReportingSvc.AssertNotCalled(suite.T(), "AccountStatement", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MovementHandlerTestSuite) TestAccountStatement_Success() {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	lines := []domain.StatementLine{{
		Date:          time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		ClientName:    "Jose Lema",
		AccountNumber: "478758",
		AccountKind:   domain.Savings,
		Amount:        decimal.NewFromInt(575),
		Balance:       decimal.NewFromInt(1425),
	}}
	suite.mockReportingSvc.On("AccountStatement", mock.Anything, int64(10), from, to).
		Return(lines, nil).Once()

	url := "/api/v1/reports?clientID=10&from=2024-01-01T00:00:00Z&to=2024-12-31T00:00:00Z"
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Jose Lema")
	suite.Contains(w.Body.String(), "478758")
}

func TestMovementHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MovementHandlerTestSuite))
}
