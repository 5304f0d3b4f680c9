package domain

import (
	"github.com/shopspring/decimal"
)

// AccountKind is the product type of a bank account.
type AccountKind string

const (
	Savings  AccountKind = "SAVINGS"
	Checking AccountKind = "CHECKING"
)

// IsValid reports whether the kind is one of the supported account kinds.
func (k AccountKind) IsValid() bool {
	return k == Savings || k == Checking
}

// Account represents a bank account within the core domain.
// The account does not carry a mutable balance: the current balance is
// derived from its movement stream, with InitialBalance as the fallback
// when no movement exists yet.
type Account struct {
	AccountID      int64           `json:"accountID"`      // Primary key, DB assigned
	Number         string          `json:"number"`         // Unique external number, 6 ASCII digits
	Kind           AccountKind     `json:"kind"`           // SAVINGS or CHECKING
	InitialBalance decimal.Decimal `json:"initialBalance"` // Non-negative, 2-decimal scale
	IsActive       bool            `json:"isActive"`       // Eligible to accept new movements
	ClientID       int64           `json:"clientID"`       // Owning client reference
	AuditFields
}
