package services

import (
	"context"
	"time"

	"github.com/banking-ms/account-movement-service/internal/core/domain"
)

// ReportingSvcFacade exposes statement report assembly.
type ReportingSvcFacade interface {
	// AccountStatement returns the client's movements within [from, to],
	// decorated with account context and the client display name.
	AccountStatement(ctx context.Context, clientID int64, from, to time.Time) ([]domain.StatementLine, error)
}
