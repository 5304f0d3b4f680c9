package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/banking-ms/account-movement-service/internal/apperrors"
	"github.com/banking-ms/account-movement-service/internal/core/domain"
	portsrepo "github.com/banking-ms/account-movement-service/internal/core/ports/repositories"
	portssvc "github.com/banking-ms/account-movement-service/internal/core/ports/services"
	"github.com/banking-ms/account-movement-service/internal/dto"
	"github.com/banking-ms/account-movement-service/internal/middleware"
	"github.com/banking-ms/account-movement-service/internal/utils"
)

var ErrDuplicateIdentification = errors.New("identification already registered")

// clientService provides client CRUD operations for the client-person service.
type clientService struct {
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new client service.
func NewClientService(repo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: repo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.clientRepo.FindClientByIdentification(ctx, req.Identification); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateIdentification, req.Identification)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check identification %s: %w", req.Identification, err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash client credential: %w", err)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now().UTC()
	client := domain.Client{
		Person: domain.Person{
			Name:           req.Name,
			Gender:         req.Gender,
			Age:            req.Age,
			Identification: req.Identification,
			Address:        req.Address,
			Phone:          req.Phone,
		},
		PasswordHash: hash,
		IsActive:     isActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	saved, err := s.clientRepo.SaveClient(ctx, client)
	if err != nil {
		logger.Error("Failed to save client", slog.String("identification", req.Identification), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Client created", slog.Int64("client_id", saved.ClientID))
	return saved, nil
}

func (s *clientService) GetClientByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find client", slog.Int64("client_id", clientID), slog.String("error", err.Error()))
		}
		return nil, err
	}
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	if clients == nil {
		return []domain.Client{}, nil
	}
	return clients, nil
}

func (s *clientService) UpdateClient(ctx context.Context, clientID int64, req dto.UpdateClientRequest) (*domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Gender != nil {
		client.Gender = *req.Gender
	}
	if req.Age != nil {
		client.Age = *req.Age
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash client credential: %w", err)
		}
		client.PasswordHash = hash
	}
	if req.IsActive != nil {
		client.IsActive = *req.IsActive
	}
	client.LastUpdatedAt = time.Now().UTC()

	updated, err := s.clientRepo.UpdateClient(ctx, *client)
	if err != nil {
		logger.Error("Failed to update client", slog.Int64("client_id", clientID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Client updated", slog.Int64("client_id", clientID))
	return updated, nil
}

func (s *clientService) DeleteClient(ctx context.Context, clientID int64) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.clientRepo.FindClientByID(ctx, clientID); err != nil {
		return err
	}

	if err := s.clientRepo.DeleteClient(ctx, clientID); err != nil {
		logger.Error("Failed to delete client", slog.Int64("client_id", clientID), slog.String("error", err.Error()))
		return err
	}

	logger.Info("Client deleted", slog.Int64("client_id", clientID))
	return nil
}
