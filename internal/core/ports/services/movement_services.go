package services

import (
	"context"
	"time"

	"github.com/banking-ms/account-movement-service/internal/core/domain"
	"github.com/banking-ms/account-movement-service/internal/dto"
	"github.com/shopspring/decimal"
)

// MovementSvcFacade exposes movement posting and balance resolution.
type MovementSvcFacade interface {
	// PostMovement validates and appends one movement, stamping it with the
	// balance that results from applying it.
	PostMovement(ctx context.Context, req dto.CreateMovementRequest) (*domain.Movement, error)

	// CurrentBalance resolves the account's balance from its latest movement,
	// falling back to the initial balance when no movement exists.
	CurrentBalance(ctx context.Context, accountID int64) (decimal.Decimal, error)

	ListMovements(ctx context.Context) ([]domain.Movement, error)
	ListMovementsByAccountID(ctx context.Context, accountID int64) ([]domain.Movement, error)
	ListMovementsByClientAndRange(ctx context.Context, clientID int64, from, to time.Time) ([]domain.Movement, error)
}
