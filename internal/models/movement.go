package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind mirrors domain.MovementKind at the storage layer.
type MovementKind string

// Movement is the DB row shape for the movements table. Rows are insert-only.
type Movement struct {
	MovementID       int64           `db:"movement_id"`
	AccountID        int64           `db:"account_id"`
	Kind             MovementKind    `db:"kind"`
	Amount           decimal.Decimal `db:"amount"`
	ResultingBalance decimal.Decimal `db:"resulting_balance"`
	OccurredAt       time.Time       `db:"occurred_at"`
}
