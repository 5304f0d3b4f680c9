package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/banking-ms/account-movement-service/internal/core/domain"
	portsrepo "github.com/banking-ms/account-movement-service/internal/core/ports/repositories"
	portssvc "github.com/banking-ms/account-movement-service/internal/core/ports/services"
	"github.com/banking-ms/account-movement-service/internal/middleware"
)

// unavailableClientLabel replaces the client display name when the client
// directory cannot be reached. A failed lookup never aborts the report.
const unavailableClientLabel = "client unavailable"

// reportingService assembles account statement reports. It is a read-only
// consumer of stored movements and takes no part in posting or balance
// enforcement.
type reportingService struct {
	movementRepo portsrepo.MovementReader
	accountRepo  portsrepo.AccountReader
	clientDir    portssvc.ClientDirectory
}

// NewReportingService creates a new reporting service.
func NewReportingService(movementRepo portsrepo.MovementReader, accountRepo portsrepo.AccountReader, clientDir portssvc.ClientDirectory) portssvc.ReportingSvcFacade {
	return &reportingService{
		movementRepo: movementRepo,
		accountRepo:  accountRepo,
		clientDir:    clientDir,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// AccountStatement decorates the client's movements in [from, to] with
// account context and the client display name.
func (s *reportingService) AccountStatement(ctx context.Context, clientID int64, from, to time.Time) ([]domain.StatementLine, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	movements, err := s.movementRepo.ListMovementsByClientAndRange(ctx, clientID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements for client %d: %w", clientID, err)
	}

	clientName, err := s.clientDir.GetClientName(ctx, clientID)
	if err != nil {
		logger.Warn("Client name lookup failed, using placeholder",
			slog.Int64("client_id", clientID), slog.String("error", err.Error()))
		clientName = unavailableClientLabel
	}

	accounts := make(map[int64]*domain.Account)
	lines := make([]domain.StatementLine, 0, len(movements))
	for _, m := range movements {
		account, ok := accounts[m.AccountID]
		if !ok {
			account, err = s.accountRepo.FindAccountByID(ctx, m.AccountID)
			if err != nil {
				logger.Warn("Account lookup failed for statement line",
					slog.Int64("account_id", m.AccountID), slog.String("error", err.Error()))
				account = nil
			}
			accounts[m.AccountID] = account
		}

		line := domain.StatementLine{
			Date:          m.OccurredAt,
			ClientName:    clientName,
			AccountNumber: "N/A",
			AccountKind:   "",
			Amount:        m.Amount,
			Balance:       m.ResultingBalance,
		}
		if account != nil {
			line.AccountNumber = account.Number
			line.AccountKind = account.Kind
			line.InitialBalance = account.InitialBalance
			line.AccountActive = account.IsActive
		} else {
			line.InitialBalance = decimal.Zero
		}
		lines = append(lines, line)
	}

	logger.Info("Account statement assembled",
		slog.Int64("client_id", clientID), slog.Int("line_count", len(lines)))
	return lines, nil
}
