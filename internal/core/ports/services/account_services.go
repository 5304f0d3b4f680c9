package services

import (
	"context"

	"github.com/banking-ms/account-movement-service/internal/core/domain"
	"github.com/banking-ms/account-movement-service/internal/dto"
)

// AccountSvcFacade exposes the account operations consumed by the HTTP layer.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)
	GetAccountByNumber(ctx context.Context, number string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	ListAccountsByClientID(ctx context.Context, clientID int64) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, accountID int64, req dto.UpdateAccountRequest) (*domain.Account, error)
	DeleteAccount(ctx context.Context, accountID int64) error
}
