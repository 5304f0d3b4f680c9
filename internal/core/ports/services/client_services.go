package services

import (
	"context"

	"github.com/banking-ms/account-movement-service/internal/core/domain"
	"github.com/banking-ms/account-movement-service/internal/dto"
)

// ClientSvcFacade exposes the client operations consumed by the HTTP layer.
type ClientSvcFacade interface {
	CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error)
	GetClientByID(ctx context.Context, clientID int64) (*domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
	UpdateClient(ctx context.Context, clientID int64, req dto.UpdateClientRequest) (*domain.Client, error)
	DeleteClient(ctx context.Context, clientID int64) error
}
