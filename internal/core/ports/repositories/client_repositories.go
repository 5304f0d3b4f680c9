package repositories

import (
	"context"

	"github.com/banking-ms/account-movement-service/internal/core/domain"
)

// ClientReader defines read operations for client data.
type ClientReader interface {
	// FindClientByID retrieves a specific client by its unique identifier.
	FindClientByID(ctx context.Context, clientID int64) (*domain.Client, error)

	// FindClientByIdentification retrieves a client by national identification.
	FindClientByIdentification(ctx context.Context, identification string) (*domain.Client, error)

	// ListClients retrieves all clients.
	ListClients(ctx context.Context) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data.
type ClientWriter interface {
	// SaveClient persists a new client and returns it with its assigned identity.
	SaveClient(ctx context.Context, client domain.Client) (*domain.Client, error)

	// UpdateClient updates an existing client's fields in place.
	UpdateClient(ctx context.Context, client domain.Client) (*domain.Client, error)

	// DeleteClient removes a client record.
	DeleteClient(ctx context.Context, clientID int64) error
}

// ClientRepositoryFacade combines all client-related repository interfaces.
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
