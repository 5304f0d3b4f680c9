package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementLine is one row of an account statement report: a stored movement
// decorated with point-in-time account context and the owning client's
// display name.
type StatementLine struct {
	Date           time.Time       `json:"date"`
	ClientName     string          `json:"clientName"`
	AccountNumber  string          `json:"accountNumber"`
	AccountKind    AccountKind     `json:"accountKind"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	AccountActive  bool            `json:"accountActive"`
	Amount         decimal.Decimal `json:"amount"`
	Balance        decimal.Decimal `json:"balance"`
}
