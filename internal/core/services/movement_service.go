package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/banking-ms/account-movement-service/internal/apperrors"
	"github.com/banking-ms/account-movement-service/internal/core/domain"
	portsrepo "github.com/banking-ms/account-movement-service/internal/core/ports/repositories"
	portssvc "github.com/banking-ms/account-movement-service/internal/core/ports/services"
	"github.com/banking-ms/account-movement-service/internal/dto"
	"github.com/banking-ms/account-movement-service/internal/middleware"
)

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrAccountInactive     = errors.New("account is inactive")
	ErrInvalidAmount       = errors.New("movement amount must be greater than zero")
	ErrInvalidMovementKind = errors.New("movement kind must be DEPOSIT or WITHDRAWAL")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// movementService posts movements and resolves balances. An account's balance
// is never stored on the account row: it is the resulting balance of the most
// recent movement, or the initial balance when no movement exists.
type movementService struct {
	movementRepo portsrepo.MovementRepositoryWithTx
	accountRepo  portsrepo.AccountRepositoryFacade
	now          func() time.Time
}

// NewMovementService creates a new movement service.
func NewMovementService(movementRepo portsrepo.MovementRepositoryWithTx, accountRepo portsrepo.AccountRepositoryFacade) portssvc.MovementSvcFacade {
	return &movementService{
		movementRepo: movementRepo,
		accountRepo:  accountRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

var _ portssvc.MovementSvcFacade = (*movementService)(nil)

// PostMovement appends one movement to the account's stream.
//
// The read-latest-balance-then-append sequence must be serialized per
// account: two concurrent posts reading the same previous balance would each
// persist an independent resulting balance and silently lose one movement's
// effect. The account row is therefore locked (SELECT ... FOR UPDATE) for the
// duration of the transaction, and the latest movement is read on that same
// transaction. Any rejection rolls back with no record written.
func (s *movementService) PostMovement(ctx context.Context, req dto.CreateMovementRequest) (*domain.Movement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Kind.IsValid() {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidMovementKind, req.Kind)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidAmount, req.Amount.String())
	}

	tx, err := s.movementRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin movement transaction: %w", err)
	}
	// No-op once the transaction has been committed.
	defer s.movementRepo.Rollback(ctx, tx)

	account, err := s.accountRepo.FindAccountByIDForUpdate(ctx, tx, req.AccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID %d", ErrAccountNotFound, req.AccountID)
		}
		logger.Error("Failed to lock account for movement", slog.Int64("account_id", req.AccountID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to lock account %d: %w", req.AccountID, err)
	}

	if !account.IsActive {
		return nil, fmt.Errorf("%w: ID %d", ErrAccountInactive, account.AccountID)
	}

	previous, err := s.balanceInTx(ctx, tx, account)
	if err != nil {
		logger.Error("Failed to resolve balance for movement", slog.Int64("account_id", account.AccountID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to resolve balance for account %d: %w", account.AccountID, err)
	}

	var next decimal.Decimal
	switch req.Kind {
	case domain.Deposit:
		next = previous.Add(req.Amount)
	case domain.Withdrawal:
		next = previous.Sub(req.Amount)
		if next.IsNegative() {
			return nil, fmt.Errorf("%w: balance %s, requested %s", ErrInsufficientBalance, previous.String(), req.Amount.String())
		}
	}

	movement := domain.Movement{
		AccountID:        account.AccountID,
		Kind:             req.Kind,
		Amount:           req.Amount,
		ResultingBalance: next,
		OccurredAt:       s.now(),
	}

	saved, err := s.movementRepo.SaveMovementTx(ctx, tx, movement)
	if err != nil {
		logger.Error("Failed to save movement", slog.Int64("account_id", account.AccountID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save movement: %w", err)
	}

	if err := s.movementRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit movement transaction: %w", err)
	}

	logger.Info("Movement posted",
		slog.Int64("movement_id", saved.MovementID),
		slog.Int64("account_id", saved.AccountID),
		slog.String("kind", string(saved.Kind)),
		slog.String("resulting_balance", saved.ResultingBalance.String()),
	)
	return saved, nil
}

// CurrentBalance resolves the account's balance outside any transaction.
// Read-only; safe to call concurrently with posting, though a concurrent post
// may commit between the two reads below, in which case the returned value is
// simply the balance from just before that post.
func (s *movementService) CurrentBalance(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, fmt.Errorf("%w: ID %d", ErrAccountNotFound, accountID)
		}
		return decimal.Zero, fmt.Errorf("failed to find account %d: %w", accountID, err)
	}

	latest, err := s.movementRepo.FindLatestMovementByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return account.InitialBalance, nil
		}
		return decimal.Zero, fmt.Errorf("failed to find latest movement for account %d: %w", accountID, err)
	}
	return latest.ResultingBalance, nil
}

// balanceInTx resolves the pre-movement balance on the locked transaction.
func (s *movementService) balanceInTx(ctx context.Context, tx pgx.Tx, account *domain.Account) (decimal.Decimal, error) {
	latest, err := s.movementRepo.FindLatestMovementByAccountIDTx(ctx, tx, account.AccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return account.InitialBalance, nil
		}
		return decimal.Zero, err
	}
	return latest.ResultingBalance, nil
}

// ListMovements retrieves every stored movement, most recent first.
func (s *movementService) ListMovements(ctx context.Context) ([]domain.Movement, error) {
	movements, err := s.movementRepo.ListMovements(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements: %w", err)
	}
	if movements == nil {
		return []domain.Movement{}, nil
	}
	return movements, nil
}

// ListMovementsByAccountID retrieves an account's movements, most recent first.
func (s *movementService) ListMovementsByAccountID(ctx context.Context, accountID int64) ([]domain.Movement, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID %d", ErrAccountNotFound, accountID)
		}
		return nil, fmt.Errorf("failed to find account %d: %w", accountID, err)
	}

	movements, err := s.movementRepo.ListMovementsByAccountID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements for account %d: %w", accountID, err)
	}
	if movements == nil {
		return []domain.Movement{}, nil
	}
	return movements, nil
}

// ListMovementsByClientAndRange retrieves the movements of all the client's
// accounts within [from, to], most recent first.
func (s *movementService) ListMovementsByClientAndRange(ctx context.Context, clientID int64, from, to time.Time) ([]domain.Movement, error) {
	movements, err := s.movementRepo.ListMovementsByClientAndRange(ctx, clientID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements for client %d: %w", clientID, err)
	}
	if movements == nil {
		return []domain.Movement{}, nil
	}
	return movements, nil
}
