package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/banking-ms/account-movement-service/internal/apperrors"
	"github.com/banking-ms/account-movement-service/internal/core/domain"
	portsrepo "github.com/banking-ms/account-movement-service/internal/core/ports/repositories"
	portssvc "github.com/banking-ms/account-movement-service/internal/core/ports/services"
	"github.com/banking-ms/account-movement-service/internal/dto"
	"github.com/banking-ms/account-movement-service/internal/middleware"
)

var (
	ErrNegativeInitialBalance = errors.New("initial balance must be non-negative")
	ErrDuplicateNumber        = errors.New("account number already in use")
)

// accountService provides account CRUD operations.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.InitialBalance.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: got %s", ErrNegativeInitialBalance, req.InitialBalance.String())
	}

	if _, err := s.accountRepo.FindAccountByNumber(ctx, req.Number); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateNumber, req.Number)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check account number %s: %w", req.Number, err)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now().UTC()
	account := domain.Account{
		Number:         req.Number,
		Kind:           req.Kind,
		InitialBalance: req.InitialBalance,
		IsActive:       isActive,
		ClientID:       req.ClientID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	saved, err := s.accountRepo.SaveAccount(ctx, account)
	if err != nil {
		logger.Error("Failed to save account", slog.String("number", req.Number), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Account created", slog.Int64("account_id", saved.AccountID), slog.String("number", saved.Number))
	return saved, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find account", slog.Int64("account_id", accountID), slog.String("error", err.Error()))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) GetAccountByNumber(ctx context.Context, number string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByNumber(ctx, number)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find account by number", slog.String("number", number), slog.String("error", err.Error()))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *accountService) ListAccountsByClientID(ctx context.Context, clientID int64) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccountsByClientID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for client %d: %w", clientID, err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

// UpdateAccount applies the provided fields in place. Changing the number to
// one already held by another account is rejected as a duplicate.
func (s *accountService) UpdateAccount(ctx context.Context, accountID int64, req dto.UpdateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.Number != nil && *req.Number != account.Number {
		if _, err := s.accountRepo.FindAccountByNumber(ctx, *req.Number); err == nil {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateNumber, *req.Number)
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to check account number %s: %w", *req.Number, err)
		}
		account.Number = *req.Number
	}
	if req.Kind != nil {
		account.Kind = *req.Kind
	}
	if req.InitialBalance != nil {
		if req.InitialBalance.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: got %s", ErrNegativeInitialBalance, req.InitialBalance.String())
		}
		account.InitialBalance = *req.InitialBalance
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	if req.ClientID != nil {
		account.ClientID = *req.ClientID
	}
	account.LastUpdatedAt = time.Now().UTC()

	updated, err := s.accountRepo.UpdateAccount(ctx, *account)
	if err != nil {
		logger.Error("Failed to update account", slog.Int64("account_id", accountID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Account updated", slog.Int64("account_id", accountID))
	return updated, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, accountID int64) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return err
	}

	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		logger.Error("Failed to delete account", slog.Int64("account_id", accountID), slog.String("error", err.Error()))
		return err
	}

	logger.Info("Account deleted", slog.Int64("account_id", accountID))
	return nil
}
