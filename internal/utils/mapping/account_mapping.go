package mapping

import (
	"github.com/banking-ms/account-movement-service/internal/core/domain"
	"github.com/banking-ms/account-movement-service/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:      d.AccountID,
		Number:         d.Number,
		Kind:           models.AccountKind(d.Kind),
		InitialBalance: d.InitialBalance,
		IsActive:       d.IsActive,
		ClientID:       d.ClientID,
		CreatedAt:      d.CreatedAt,
		LastUpdatedAt:  d.LastUpdatedAt,
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:      m.AccountID,
		Number:         m.Number,
		Kind:           domain.AccountKind(m.Kind),
		InitialBalance: m.InitialBalance,
		IsActive:       m.IsActive,
		ClientID:       m.ClientID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
