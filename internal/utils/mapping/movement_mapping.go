package mapping

import (
	"github.com/banking-ms/account-movement-service/internal/core/domain"
	"github.com/banking-ms/account-movement-service/internal/models"
)

// ToModelMovement converts a domain Movement to a model Movement
func ToModelMovement(d domain.Movement) models.Movement {
	return models.Movement{
		MovementID:       d.MovementID,
		AccountID:        d.AccountID,
		Kind:             models.MovementKind(d.Kind),
		Amount:           d.Amount,
		ResultingBalance: d.ResultingBalance,
		OccurredAt:       d.OccurredAt,
	}
}

// ToDomainMovement converts a model Movement to a domain Movement
func ToDomainMovement(m models.Movement) domain.Movement {
	return domain.Movement{
		MovementID:       m.MovementID,
		AccountID:        m.AccountID,
		Kind:             domain.MovementKind(m.Kind),
		Amount:           m.Amount,
		ResultingBalance: m.ResultingBalance,
		OccurredAt:       m.OccurredAt,
	}
}

// ToDomainMovementSlice converts a slice of model Movements to domain Movements
func ToDomainMovementSlice(ms []models.Movement) []domain.Movement {
	ds := make([]domain.Movement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMovement(m)
	}
	return ds
}
