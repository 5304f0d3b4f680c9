package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/banking-ms/account-movement-service/internal/apperrors"
	"github.com/banking-ms/account-movement-service/internal/core/domain"
	portsrepo "github.com/banking-ms/account-movement-service/internal/core/ports/repositories"
	"github.com/banking-ms/account-movement-service/internal/models"
	"github.com/banking-ms/account-movement-service/internal/utils/mapping"
)

const clientColumns = "client_id, name, gender, age, identification, address, phone, password_hash, is_active, created_at, last_updated_at"

// PgxClientRepository persists clients in PostgreSQL.
type PgxClientRepository struct {
	BaseRepository
}

// NewClientRepository creates a new repository for client data.
func NewClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

// SaveClient inserts a new client and returns it with the DB-assigned ID.
func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) (*domain.Client, error) {
	modelClient := mapping.ToModelClient(client)

	query := `
		INSERT INTO clients (name, gender, age, identification, address, phone, password_hash, is_active, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING client_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		modelClient.Name,
		modelClient.Gender,
		modelClient.Age,
		modelClient.Identification,
		modelClient.Address,
		modelClient.Phone,
		modelClient.PasswordHash,
		modelClient.IsActive,
		modelClient.CreatedAt,
		modelClient.LastUpdatedAt,
	).Scan(&modelClient.ClientID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: identification %s", apperrors.ErrDuplicate, modelClient.Identification)
		}
		return nil, fmt.Errorf("failed to save client %s: %w", modelClient.Identification, err)
	}

	saved := mapping.ToDomainClient(modelClient)
	return &saved, nil
}

// FindClientByID retrieves a client by its ID.
func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	query := fmt.Sprintf("SELECT %s FROM clients WHERE client_id = $1;", clientColumns)
	return scanClientRow(r.Pool.QueryRow(ctx, query, clientID))
}

// FindClientByIdentification retrieves a client by national identification.
func (r *PgxClientRepository) FindClientByIdentification(ctx context.Context, identification string) (*domain.Client, error) {
	query := fmt.Sprintf("SELECT %s FROM clients WHERE identification = $1;", clientColumns)
	return scanClientRow(r.Pool.QueryRow(ctx, query, identification))
}

// ListClients retrieves all clients ordered by ID.
func (r *PgxClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	query := fmt.Sprintf("SELECT %s FROM clients ORDER BY client_id;", clientColumns)
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var modelClients []models.Client
	for rows.Next() {
		m, err := scanClientValues(rows)
		if err != nil {
			return nil, err
		}
		modelClients = append(modelClients, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate client rows: %w", err)
	}
	return mapping.ToDomainClientSlice(modelClients), nil
}

// UpdateClient updates a client's fields in place.
func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) (*domain.Client, error) {
	modelClient := mapping.ToModelClient(client)

	query := `
		UPDATE clients
		SET name = $2, gender = $3, age = $4, address = $5, phone = $6, password_hash = $7, is_active = $8, last_updated_at = $9
		WHERE client_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelClient.ClientID,
		modelClient.Name,
		modelClient.Gender,
		modelClient.Age,
		modelClient.Address,
		modelClient.Phone,
		modelClient.PasswordHash,
		modelClient.IsActive,
		modelClient.LastUpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update client %d: %w", modelClient.ClientID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}

	updated := mapping.ToDomainClient(modelClient)
	return &updated, nil
}

// DeleteClient removes a client record.
func (r *PgxClientRepository) DeleteClient(ctx context.Context, clientID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM clients WHERE client_id = $1;`, clientID)
	if err != nil {
		return fmt.Errorf("failed to delete client %d: %w", clientID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanClientRow(row pgx.Row) (*domain.Client, error) {
	var m models.Client
	err := row.Scan(
		&m.ClientID,
		&m.Name,
		&m.Gender,
		&m.Age,
		&m.Identification,
		&m.Address,
		&m.Phone,
		&m.PasswordHash,
		&m.IsActive,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan client row: %w", err)
	}
	client := mapping.ToDomainClient(m)
	return &client, nil
}

func scanClientValues(rows pgx.Rows) (models.Client, error) {
	var m models.Client
	if err := rows.Scan(
		&m.ClientID,
		&m.Name,
		&m.Gender,
		&m.Age,
		&m.Identification,
		&m.Address,
		&m.Phone,
		&m.PasswordHash,
		&m.IsActive,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	); err != nil {
		return models.Client{}, fmt.Errorf("failed to scan client row: %w", err)
	}
	return m, nil
}
