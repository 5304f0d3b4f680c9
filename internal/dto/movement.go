package dto

import (
	"time"

	"github.com/banking-ms/account-movement-service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMovementRequest defines the data needed to post a movement.
// The timestamp is never accepted from the caller.
type CreateMovementRequest struct {
	AccountID int64               `json:"accountID" binding:"required"`
	Kind      domain.MovementKind `json:"kind" binding:"required"`
	Amount    decimal.Decimal     `json:"amount" binding:"required,decimalgt0"`
}

// MovementResponse defines the data returned for a movement.
type MovementResponse struct {
	MovementID       int64               `json:"movementID"`
	AccountID        int64               `json:"accountID"`
	Kind             domain.MovementKind `json:"kind"`
	Amount           decimal.Decimal     `json:"amount"`
	ResultingBalance decimal.Decimal     `json:"resultingBalance"`
	OccurredAt       time.Time           `json:"occurredAt"`
}

// ToMovementResponse converts a domain.Movement to MovementResponse
func ToMovementResponse(m *domain.Movement) MovementResponse {
	return MovementResponse{
		MovementID:       m.MovementID,
		AccountID:        m.AccountID,
		Kind:             m.Kind,
		Amount:           m.Amount,
		ResultingBalance: m.ResultingBalance,
		OccurredAt:       m.OccurredAt,
	}
}

// ToMovementResponseSlice converts a slice of domain.Movement to responses
func ToMovementResponseSlice(movements []domain.Movement) []MovementResponse {
	res := make([]MovementResponse, len(movements))
	for i := range movements {
		res[i] = ToMovementResponse(&movements[i])
	}
	return res
}
