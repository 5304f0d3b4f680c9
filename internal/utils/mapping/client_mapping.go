package mapping

import (
	"github.com/banking-ms/account-movement-service/internal/core/domain"
	"github.com/banking-ms/account-movement-service/internal/models"
)

// ToModelClient converts a domain Client to a model Client
func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:       d.ClientID,
		Name:           d.Name,
		Gender:         d.Gender,
		Age:            d.Age,
		Identification: d.Identification,
		Address:        d.Address,
		Phone:          d.Phone,
		PasswordHash:   d.PasswordHash,
		IsActive:       d.IsActive,
		CreatedAt:      d.CreatedAt,
		LastUpdatedAt:  d.LastUpdatedAt,
	}
}

// ToDomainClient converts a model Client to a domain Client
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		Person: domain.Person{
			PersonID:       m.ClientID,
			Name:           m.Name,
			Gender:         m.Gender,
			Age:            m.Age,
			Identification: m.Identification,
			Address:        m.Address,
			Phone:          m.Phone,
		},
		ClientID:     m.ClientID,
		PasswordHash: m.PasswordHash,
		IsActive:     m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainClientSlice converts a slice of model Clients to domain Clients
func ToDomainClientSlice(ms []models.Client) []domain.Client {
	ds := make([]domain.Client, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClient(m)
	}
	return ds
}
