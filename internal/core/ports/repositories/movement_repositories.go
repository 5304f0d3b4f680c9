package repositories

import (
	"context"
	"time"

	"github.com/banking-ms/account-movement-service/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// MovementReader defines read operations for movement data.
type MovementReader interface {
	// ListMovements retrieves all movements, most recent first.
	ListMovements(ctx context.Context) ([]domain.Movement, error)

	// ListMovementsByAccountID retrieves the movements for one account,
	// ordered by timestamp descending.
	ListMovementsByAccountID(ctx context.Context, accountID int64) ([]domain.Movement, error)

	// ListMovementsByClientAndRange retrieves the movements belonging to all of
	// a client's accounts within [from, to], ordered by timestamp descending.
	ListMovementsByClientAndRange(ctx context.Context, clientID int64, from, to time.Time) ([]domain.Movement, error)

	// FindLatestMovementByAccountID retrieves the most recent movement for an
	// account. Returns apperrors.ErrNotFound when the account has no movements.
	FindLatestMovementByAccountID(ctx context.Context, accountID int64) (*domain.Movement, error)
}

// MovementTransactionSupport defines the in-transaction operations the
// movement poster needs so that the read-latest-then-append sequence for one
// account is serialized.
type MovementTransactionSupport interface {
	// FindLatestMovementByAccountIDTx is FindLatestMovementByAccountID executed
	// on the given transaction.
	FindLatestMovementByAccountIDTx(ctx context.Context, tx pgx.Tx, accountID int64) (*domain.Movement, error)

	// SaveMovementTx appends a movement on the given transaction and returns it
	// with its assigned identity.
	SaveMovementTx(ctx context.Context, tx pgx.Tx, movement domain.Movement) (*domain.Movement, error)
}

// MovementRepositoryFacade combines all movement-related repository interfaces.
type MovementRepositoryFacade interface {
	MovementReader
	MovementTransactionSupport
}

// MovementRepositoryWithTx extends MovementRepositoryFacade with transaction
// capabilities.
type MovementRepositoryWithTx interface {
	MovementRepositoryFacade
	TransactionManager
}
