package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/banking-ms/account-movement-service/internal/apperrors"
	"github.com/banking-ms/account-movement-service/internal/core/domain"
	portssvc "github.com/banking-ms/account-movement-service/internal/core/ports/services"
	"github.com/banking-ms/account-movement-service/internal/core/services"
)

// MockClientDirectory is a mock type for the ClientDirectory interface
type MockClientDirectory struct {
	mock.Mock
}

func (m *MockClientDirectory) GetClientName(ctx context.Context, clientID int64) (string, error) {
	args := m.Called(ctx, clientID)
	return args.String(0), args.Error(1)
}

type ReportingServiceTestSuite struct {
	suite.Suite
	mockMovementRepo *MockMovementRepository
	mockAccountRepo  *MockAccountRepository
	mockClientDir    *MockClientDirectory
	service          portssvc.ReportingSvcFacade

	from time.Time
	to   time.Time
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockMovementRepo = new(MockMovementRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockClientDir = new(MockClientDirectory)
	suite.service = services.NewReportingService(suite.mockMovementRepo, suite.mockAccountRepo, suite.mockClientDir)
	suite.from = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.to = time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)
}

func (suite *ReportingServiceTestSuite) movementsForClient() []domain.Movement {
	return []domain.Movement{
		{
			MovementID:       2,
			AccountID:        1,
			Kind:             domain.Withdrawal,
			Amount:           decimal.NewFromInt(575),
			ResultingBalance: decimal.NewFromInt(1425),
			OccurredAt:       time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC),
		},
		{
			MovementID:       1,
			AccountID:        1,
			Kind:             domain.Deposit,
			Amount:           decimal.NewFromInt(600),
			ResultingBalance: decimal.NewFromInt(2000),
			OccurredAt:       time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		},
	}
}

func (suite *ReportingServiceTestSuite) TestAccountStatement_Success() {
	ctx := context.Background()
	account := activeAccount()

	suite.mockMovementRepo.On("ListMovementsByClientAndRange", ctx, int64(10), suite.from, suite.to).
		Return(suite.movementsForClient(), nil).Once()
	suite.mockClientDir.On("GetClientName", ctx, int64(10)).Return("Jose Lema", nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(1)).Return(account, nil).Once()

	lines, err := suite.service.AccountStatement(ctx, 10, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Require().Len(lines, 2)
	suite.Equal("Jose Lema", lines[0].ClientName)
	suite.Equal("478758", lines[0].AccountNumber)
	suite.Equal(domain.Savings, lines[0].AccountKind)
	suite.True(lines[0].Amount.Equal(decimal.NewFromInt(575)))
	suite.True(lines[0].Balance.Equal(decimal.NewFromInt(1425)))
	suite.True(lines[1].Balance.Equal(decimal.NewFromInt(2000)))

	// One account shared by both lines means one lookup.
	suite.mockAccountRepo.AssertNumberOfCalls(suite.T(), "FindAccountByID", 1)
}

func (suite *ReportingServiceTestSuite) TestAccountStatement_ClientLookupFailureUsesPlaceholder() {
	ctx := context.Background()
	account := activeAccount()

	suite.mockMovementRepo.On("ListMovementsByClientAndRange", ctx, int64(10), suite.from, suite.to).
		Return(suite.movementsForClient(), nil).Once()
	suite.mockClientDir.On("GetClientName", ctx, int64(10)).
		Return("", errors.New("client service unreachable")).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(1)).Return(account, nil).Once()

	lines, err := suite.service.AccountStatement(ctx, 10, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Require().Len(lines, 2)
	for _, line := range lines {
		suite.Equal("client unavailable", line.ClientName)
	}
}

func (suite *ReportingServiceTestSuite) TestAccountStatement_AccountLookupFailureDegradesLine() {
	ctx := context.Background()

	suite.mockMovementRepo.On("ListMovementsByClientAndRange", ctx, int64(10), suite.from, suite.to).
		Return(suite.movementsForClient(), nil).Once()
	suite.mockClientDir.On("GetClientName", ctx, int64(10)).Return("Jose Lema", nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(1)).Return(nil, apperrors.ErrNotFound).Once()

	lines, err := suite.service.AccountStatement(ctx, 10, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Require().Len(lines, 2)
	suite.Equal("N/A", lines[0].AccountNumber)
	suite.True(lines[0].InitialBalance.IsZero())
	// Movement data is still intact on the degraded line.
	suite.True(lines[0].Amount.Equal(decimal.NewFromInt(575)))
}

func (suite *ReportingServiceTestSuite) TestAccountStatement_EmptyRange() {
	ctx := context.Background()

	suite.mockMovementRepo.On("ListMovementsByClientAndRange", ctx, int64(10), suite.from, suite.to).
		Return([]domain.Movement{}, nil).Once()
	suite.mockClientDir.On("GetClientName", ctx, int64(10)).Return("Jose Lema", nil).Once()

	lines, err := suite.service.AccountStatement(ctx, 10, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Empty(lines)
}

func (suite *ReportingServiceTestSuite) TestAccountStatement_MovementListFailure() {
	ctx := context.Background()

	suite.mockMovementRepo.On("ListMovementsByClientAndRange", ctx, int64(10), suite.from, suite.to).
		Return(nil, errors.New("db down")).Once()

	_, err := suite.service.AccountStatement(ctx, 10, suite.from, suite.to)

	suite.Error(err)
	suite.mockClientDir.AssertNotCalled(suite.T(), "GetClientName", mock.Anything, mock.Anything)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
