package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/banking-ms/account-movement-service/internal/apperrors"
	"github.com/banking-ms/account-movement-service/internal/core/domain"
	portsrepo "github.com/banking-ms/account-movement-service/internal/core/ports/repositories"
	"github.com/banking-ms/account-movement-service/internal/models"
	"github.com/banking-ms/account-movement-service/internal/utils/mapping"
)

const movementColumns = "movement_id, account_id, kind, amount, resulting_balance, occurred_at"

// Latest-first ordering. The movement_id tiebreak keeps movements with equal
// timestamps totally ordered, so "latest" is always well defined.
const movementOrder = "ORDER BY occurred_at DESC, movement_id DESC"

// PgxMovementRepository persists movements in PostgreSQL. Movement rows are
// insert-only; there is no update or delete path.
type PgxMovementRepository struct {
	BaseRepository
}

// NewMovementRepository creates a new repository for movement data.
func NewMovementRepository(pool *pgxpool.Pool) portsrepo.MovementRepositoryWithTx {
	return &PgxMovementRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MovementRepositoryWithTx = (*PgxMovementRepository)(nil)

// SaveMovementTx appends a movement on the given transaction and returns it
// with the DB-assigned monotonic ID.
func (r *PgxMovementRepository) SaveMovementTx(ctx context.Context, tx pgx.Tx, movement domain.Movement) (*domain.Movement, error) {
	modelMov := mapping.ToModelMovement(movement)

	query := `
		INSERT INTO movements (account_id, kind, amount, resulting_balance, occurred_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING movement_id;
	`
	err := tx.QueryRow(ctx, query,
		modelMov.AccountID,
		modelMov.Kind,
		modelMov.Amount,
		modelMov.ResultingBalance,
		modelMov.OccurredAt,
	).Scan(&modelMov.MovementID)
	if err != nil {
		return nil, fmt.Errorf("failed to save movement for account %d: %w", modelMov.AccountID, err)
	}

	saved := mapping.ToDomainMovement(modelMov)
	return &saved, nil
}

// FindLatestMovementByAccountID retrieves the most recent movement for an account.
func (r *PgxMovementRepository) FindLatestMovementByAccountID(ctx context.Context, accountID int64) (*domain.Movement, error) {
	query := fmt.Sprintf("SELECT %s FROM movements WHERE account_id = $1 %s LIMIT 1;", movementColumns, movementOrder)
	return scanMovementRow(r.Pool.QueryRow(ctx, query, accountID))
}

// FindLatestMovementByAccountIDTx is FindLatestMovementByAccountID on the
// given transaction, used while the account row lock is held.
func (r *PgxMovementRepository) FindLatestMovementByAccountIDTx(ctx context.Context, tx pgx.Tx, accountID int64) (*domain.Movement, error) {
	query := fmt.Sprintf("SELECT %s FROM movements WHERE account_id = $1 %s LIMIT 1;", movementColumns, movementOrder)
	return scanMovementRow(tx.QueryRow(ctx, query, accountID))
}

// ListMovements retrieves all movements, most recent first.
func (r *PgxMovementRepository) ListMovements(ctx context.Context) ([]domain.Movement, error) {
	query := fmt.Sprintf("SELECT %s FROM movements %s;", movementColumns, movementOrder)
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements: %w", err)
	}
	defer rows.Close()
	return scanMovementRows(rows)
}

// ListMovementsByAccountID retrieves an account's movements, most recent first.
func (r *PgxMovementRepository) ListMovementsByAccountID(ctx context.Context, accountID int64) ([]domain.Movement, error) {
	query := fmt.Sprintf("SELECT %s FROM movements WHERE account_id = $1 %s;", movementColumns, movementOrder)
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements for account %d: %w", accountID, err)
	}
	defer rows.Close()
	return scanMovementRows(rows)
}

// ListMovementsByClientAndRange retrieves the movements of all the client's
// accounts within [from, to], most recent first.
func (r *PgxMovementRepository) ListMovementsByClientAndRange(ctx context.Context, clientID int64, from, to time.Time) ([]domain.Movement, error) {
	query := `
		SELECT m.movement_id, m.account_id, m.kind, m.amount, m.resulting_balance, m.occurred_at
		FROM movements m
		JOIN accounts a ON m.account_id = a.account_id
		WHERE a.client_id = $1 AND m.occurred_at BETWEEN $2 AND $3
		ORDER BY m.occurred_at DESC, m.movement_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, clientID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements for client %d: %w", clientID, err)
	}
	defer rows.Close()
	return scanMovementRows(rows)
}

func scanMovementRow(row pgx.Row) (*domain.Movement, error) {
	var m models.Movement
	err := row.Scan(
		&m.MovementID,
		&m.AccountID,
		&m.Kind,
		&m.Amount,
		&m.ResultingBalance,
		&m.OccurredAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan movement row: %w", err)
	}
	movement := mapping.ToDomainMovement(m)
	return &movement, nil
}

func scanMovementRows(rows pgx.Rows) ([]domain.Movement, error) {
	var modelMovements []models.Movement
	for rows.Next() {
		var m models.Movement
		if err := rows.Scan(
			&m.MovementID,
			&m.AccountID,
			&m.Kind,
			&m.Amount,
			&m.ResultingBalance,
			&m.OccurredAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan movement row: %w", err)
		}
		modelMovements = append(modelMovements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate movement rows: %w", err)
	}
	return mapping.ToDomainMovementSlice(modelMovements), nil
}
