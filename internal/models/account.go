package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountKind mirrors domain.AccountKind at the storage layer.
type AccountKind string

// Account is the DB row shape for the accounts table.
type Account struct {
	AccountID      int64           `db:"account_id"`
	Number         string          `db:"number"`
	Kind           AccountKind     `db:"kind"`
	InitialBalance decimal.Decimal `db:"initial_balance"`
	IsActive       bool            `db:"is_active"`
	ClientID       int64           `db:"client_id"`
	CreatedAt      time.Time       `db:"created_at"`
	LastUpdatedAt  time.Time       `db:"last_updated_at"`
}
