package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind indicates whether a movement adds to or subtracts from a balance.
type MovementKind string

const (
	Deposit    MovementKind = "DEPOSIT"
	Withdrawal MovementKind = "WITHDRAWAL"
)

// IsValid reports whether the kind is one of the supported movement kinds.
func (k MovementKind) IsValid() bool {
	return k == Deposit || k == Withdrawal
}

// Movement is an immutable record of one deposit or withdrawal against an
// account. ResultingBalance is stamped at creation time and reflects all
// movements up to and including this one. Movements are never updated or
// deleted once written.
type Movement struct {
	MovementID       int64           `json:"movementID"`       // Primary key, monotonically assigned by the DB
	AccountID        int64           `json:"accountID"`        // FK -> accounts.account_id
	Kind             MovementKind    `json:"kind"`             // DEPOSIT or WITHDRAWAL
	Amount           decimal.Decimal `json:"amount"`           // Positive, 2-decimal scale
	ResultingBalance decimal.Decimal `json:"resultingBalance"` // Balance after applying this movement, never negative
	OccurredAt       time.Time       `json:"occurredAt"`       // Server-assigned, never client-supplied
}
