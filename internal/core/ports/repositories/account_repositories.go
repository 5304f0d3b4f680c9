package repositories

import (
	"context"

	"github.com/banking-ms/account-movement-service/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// FindAccountByNumber retrieves an account by its external account number.
	FindAccountByNumber(ctx context.Context, number string) (*domain.Account, error)

	// ListAccounts retrieves all accounts.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// ListAccountsByClientID retrieves all accounts owned by a client.
	ListAccountsByClientID(ctx context.Context, clientID int64) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount persists a new account and returns it with its assigned identity.
	SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error)

	// UpdateAccount updates an existing account's mutable fields in place.
	UpdateAccount(ctx context.Context, account domain.Account) (*domain.Account, error)

	// DeleteAccount removes an account record.
	DeleteAccount(ctx context.Context, accountID int64) error
}

// AccountTransactionSupport defines operations that run inside a database
// transaction on behalf of the movement poster.
type AccountTransactionSupport interface {
	// FindAccountByIDForUpdate selects the account row and locks it until the
	// surrounding transaction commits or rolls back.
	FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID int64) (*domain.Account, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}
