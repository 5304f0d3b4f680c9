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

const accountColumns = "account_id, number, kind, initial_balance, is_active, client_id, created_at, last_updated_at"

// PgxAccountRepository persists accounts in PostgreSQL.
type PgxAccountRepository struct {
	BaseRepository
}

// NewAccountRepository creates a new repository for account data.
func NewAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

// SaveAccount inserts a new account and returns it with the DB-assigned ID.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	modelAcc := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (number, kind, initial_balance, is_active, client_id, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING account_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		modelAcc.Number,
		modelAcc.Kind,
		modelAcc.InitialBalance,
		modelAcc.IsActive,
		modelAcc.ClientID,
		modelAcc.CreatedAt,
		modelAcc.LastUpdatedAt,
	).Scan(&modelAcc.AccountID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: account number %s", apperrors.ErrDuplicate, modelAcc.Number)
		}
		return nil, fmt.Errorf("failed to save account %s: %w", modelAcc.Number, err)
	}

	saved := mapping.ToDomainAccount(modelAcc)
	return &saved, nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := fmt.Sprintf("SELECT %s FROM accounts WHERE account_id = $1;", accountColumns)
	return r.scanAccountRow(r.Pool.QueryRow(ctx, query, accountID))
}

// FindAccountByNumber retrieves an account by its external number.
func (r *PgxAccountRepository) FindAccountByNumber(ctx context.Context, number string) (*domain.Account, error) {
	query := fmt.Sprintf("SELECT %s FROM accounts WHERE number = $1;", accountColumns)
	return r.scanAccountRow(r.Pool.QueryRow(ctx, query, number))
}

// FindAccountByIDForUpdate retrieves the account on the given transaction and
// holds a row lock until the transaction finishes. This serializes movement
// posting per account.
func (r *PgxAccountRepository) FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID int64) (*domain.Account, error) {
	query := fmt.Sprintf("SELECT %s FROM accounts WHERE account_id = $1 FOR UPDATE;", accountColumns)
	return r.scanAccountRow(tx.QueryRow(ctx, query, accountID))
}

// ListAccounts retrieves all accounts ordered by ID.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := fmt.Sprintf("SELECT %s FROM accounts ORDER BY account_id;", accountColumns)
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()
	return scanAccountRows(rows)
}

// ListAccountsByClientID retrieves all accounts owned by a client.
func (r *PgxAccountRepository) ListAccountsByClientID(ctx context.Context, clientID int64) ([]domain.Account, error) {
	query := fmt.Sprintf("SELECT %s FROM accounts WHERE client_id = $1 ORDER BY account_id;", accountColumns)
	rows, err := r.Pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for client %d: %w", clientID, err)
	}
	defer rows.Close()
	return scanAccountRows(rows)
}

// UpdateAccount updates an account's mutable fields in place.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	modelAcc := mapping.ToModelAccount(account)

	query := `
		UPDATE accounts
		SET number = $2, kind = $3, initial_balance = $4, is_active = $5, client_id = $6, last_updated_at = $7
		WHERE account_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelAcc.AccountID,
		modelAcc.Number,
		modelAcc.Kind,
		modelAcc.InitialBalance,
		modelAcc.IsActive,
		modelAcc.ClientID,
		modelAcc.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: account number %s", apperrors.ErrDuplicate, modelAcc.Number)
		}
		return nil, fmt.Errorf("failed to update account %d: %w", modelAcc.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}

	updated := mapping.ToDomainAccount(modelAcc)
	return &updated, nil
}

// DeleteAccount removes an account. The movements FK restricts deletion of
// accounts that still have history.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM accounts WHERE account_id = $1;`, accountID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: account %d has movements", apperrors.ErrValidation, accountID)
		}
		return fmt.Errorf("failed to delete account %d: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAccountRepository) scanAccountRow(row pgx.Row) (*domain.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.Number,
		&m.Kind,
		&m.InitialBalance,
		&m.IsActive,
		&m.ClientID,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan account row: %w", err)
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}

func scanAccountRows(rows pgx.Rows) ([]domain.Account, error) {
	var modelAccounts []models.Account
	for rows.Next() {
		var m models.Account
		if err := rows.Scan(
			&m.AccountID,
			&m.Number,
			&m.Kind,
			&m.InitialBalance,
			&m.IsActive,
			&m.ClientID,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		modelAccounts = append(modelAccounts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate account rows: %w", err)
	}
	return mapping.ToDomainAccountSlice(modelAccounts), nil
}
