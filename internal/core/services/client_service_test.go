package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/banking-ms/account-movement-service/internal/apperrors"
	"github.com/banking-ms/account-movement-service/internal/core/domain"
	portssvc "github.com/banking-ms/account-movement-service/internal/core/ports/services"
	"github.com/banking-ms/account-movement-service/internal/core/services"
	"github.com/banking-ms/account-movement-service/internal/dto"
)

// MockClientRepository is a mock type for the ClientRepositoryFacade interface
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) FindClientByIdentification(ctx context.Context, identification string) (*domain.Client, error) {
	args := m.Called(ctx, identification)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) (*domain.Client, error) {
	args := m.Called(ctx, client)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) (*domain.Client, error) {
	args := m.Called(ctx, client)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) DeleteClient(ctx context.Context, clientID int64) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

type ClientServiceTestSuite struct {
	suite.Suite
	mockRepo *MockClientRepository
	service  portssvc.ClientSvcFacade
}

func (suite *ClientServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockClientRepository)
	suite.service = services.NewClientService(suite.mockRepo)
}

func sampleClient() *domain.Client {
	return &domain.Client{
		Person: domain.Person{
			Name:           "Jose Lema",
			Gender:         "M",
			Age:            35,
			Identification: "0912345678",
			Address:        "Otavalo sn y principal",
			Phone:          "0982547851",
		},
		ClientID:     10,
		PasswordHash: "$2a$10$fixture",
		IsActive:     true,
	}
}

func (suite *ClientServiceTestSuite) TestCreateClient_HashesCredential() {
	ctx := context.Background()
	req := dto.CreateClientRequest{
		Name:           "Jose Lema",
		Gender:         "M",
		Age:            35,
		Identification: "0912345678",
		Address:        "Otavalo sn y principal",
		Phone:          "0982547851",
		Password:       "1234",
	}

	suite.mockRepo.On("FindClientByIdentification", ctx, "0912345678").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		// The raw credential never reaches the repository.
		return c.PasswordHash != "1234" &&
			bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte("1234")) == nil
	})).Return(sampleClient(), nil).Once()

	client, err := suite.service.CreateClient(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(10), client.ClientID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestCreateClient_DuplicateIdentification() {
	ctx := context.Background()
	req := dto.CreateClientRequest{
		Name:           "Jose Lema",
		Gender:         "M",
		Age:            35,
		Identification: "0912345678",
		Address:        "Otavalo sn y principal",
		Phone:          "0982547851",
		Password:       "1234",
	}

	suite.mockRepo.On("FindClientByIdentification", ctx, "0912345678").Return(sampleClient(), nil).Once()

	_, err := suite.service.CreateClient(ctx, req)

	suite.ErrorIs(err, services.ErrDuplicateIdentification)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveClient", mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestUpdateClient_RehashesChangedCredential() {
	ctx := context.Background()
	client := sampleClient()
	newPassword := "5678"

	suite.mockRepo.On("FindClientByID", ctx, int64(10)).Return(client, nil).Once()
	suite.mockRepo.On("UpdateClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte("5678")) == nil
	})).Return(client, nil).Once()

	_, err := suite.service.UpdateClient(ctx, 10, dto.UpdateClientRequest{Password: &newPassword})

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestUpdateClient_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindClientByID", ctx, int64(42)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateClient(ctx, 42, dto.UpdateClientRequest{})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ClientServiceTestSuite) TestDeleteClient_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindClientByID", ctx, int64(42)).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteClient(ctx, 42)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteClient", mock.Anything, mock.Anything)
}

func TestClientServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}
