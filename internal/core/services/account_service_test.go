package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/banking-ms/account-movement-service/internal/apperrors"
	"github.com/banking-ms/account-movement-service/internal/core/domain"
	portssvc "github.com/banking-ms/account-movement-service/internal/core/ports/services"
	"github.com/banking-ms/account-movement-service/internal/core/services"
	"github.com/banking-ms/account-movement-service/internal/dto"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Number:         "478758",
		Kind:           domain.Savings,
		InitialBalance: decimal.NewFromInt(2000),
		ClientID:       10,
	}

	suite.mockRepo.On("FindAccountByNumber", ctx, "478758").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Number == "478758" && a.IsActive && a.InitialBalance.Equal(decimal.NewFromInt(2000))
	})).Return(&domain.Account{
		AccountID:      1,
		Number:         "478758",
		Kind:           domain.Savings,
		InitialBalance: decimal.NewFromInt(2000),
		IsActive:       true,
		ClientID:       10,
	}, nil).Once()

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.Equal(int64(1), account.AccountID)
	suite.True(account.IsActive)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ExplicitlyInactive() {
	ctx := context.Background()
	inactive := false
	req := dto.CreateAccountRequest{
		Number:         "495878",
		Kind:           domain.Checking,
		InitialBalance: decimal.NewFromInt(100),
		IsActive:       &inactive,
		ClientID:       11,
	}

	suite.mockRepo.On("FindAccountByNumber", ctx, "495878").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return !a.IsActive
	})).Return(&domain.Account{AccountID: 2, Number: "495878", IsActive: false}, nil).Once()

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.False(account.IsActive)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_NegativeInitialBalance() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Number:         "478758",
		Kind:           domain.Savings,
		InitialBalance: decimal.NewFromInt(-100),
		ClientID:       10,
	}

	_, err := suite.service.CreateAccount(ctx, req)

	suite.ErrorIs(err, services.ErrNegativeInitialBalance)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateNumber() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Number:         "478758",
		Kind:           domain.Savings,
		InitialBalance: decimal.NewFromInt(2000),
		ClientID:       10,
	}

	suite.mockRepo.On("FindAccountByNumber", ctx, "478758").Return(activeAccount(), nil).Once()

	_, err := suite.service.CreateAccount(ctx, req)

	suite.ErrorIs(err, services.ErrDuplicateNumber)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_PartialUpdate() {
	ctx := context.Background()
	account := activeAccount()
	inactive := false
	req := dto.UpdateAccountRequest{IsActive: &inactive}

	suite.mockRepo.On("FindAccountByID", ctx, int64(1)).Return(account, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		// Untouched fields survive, only the provided one changes.
		return !a.IsActive && a.Number == "478758" && a.Kind == domain.Savings
	})).Return(account, nil).Once()

	_, err := suite.service.UpdateAccount(ctx, 1, req)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_DuplicateNumber() {
	ctx := context.Background()
	account := activeAccount()
	newNumber := "585545"
	req := dto.UpdateAccountRequest{Number: &newNumber}

	suite.mockRepo.On("FindAccountByID", ctx, int64(1)).Return(account, nil).Once()
	suite.mockRepo.On("FindAccountByNumber", ctx, "585545").
		Return(&domain.Account{AccountID: 9, Number: "585545"}, nil).Once()

	_, err := suite.service.UpdateAccount(ctx, 1, req)

	suite.ErrorIs(err, services.ErrDuplicateNumber)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindAccountByID", ctx, int64(42)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateAccount(ctx, 42, dto.UpdateAccountRequest{})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindAccountByID", ctx, int64(42)).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteAccount(ctx, 42)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestListAccounts_NilBecomesEmptySlice() {
	ctx := context.Background()

	suite.mockRepo.On("ListAccounts", ctx).Return([]domain.Account(nil), nil).Once()

	accounts, err := suite.service.ListAccounts(ctx)

	suite.Require().NoError(err)
	suite.NotNil(accounts)
	suite.Empty(accounts)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
