package dto

import (
	"time"

	"github.com/banking-ms/account-movement-service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StatementParams defines the query parameters for an account statement.
type StatementParams struct {
	ClientID int64     `form:"clientID" binding:"required"`
	From     time.Time `form:"from" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	To       time.Time `form:"to" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

// StatementLineResponse is one row of the statement report.
type StatementLineResponse struct {
	Date           time.Time          `json:"date"`
	ClientName     string             `json:"clientName"`
	AccountNumber  string             `json:"accountNumber"`
	AccountKind    domain.AccountKind `json:"accountKind"`
	InitialBalance decimal.Decimal    `json:"initialBalance"`
	AccountActive  bool               `json:"accountActive"`
	Amount         decimal.Decimal    `json:"amount"`
	Balance        decimal.Decimal    `json:"balance"`
}

// ToStatementLineResponse converts a domain.StatementLine to its response shape
func ToStatementLineResponse(l domain.StatementLine) StatementLineResponse {
	return StatementLineResponse{
		Date:           l.Date,
		ClientName:     l.ClientName,
		AccountNumber:  l.AccountNumber,
		AccountKind:    l.AccountKind,
		InitialBalance: l.InitialBalance,
		AccountActive:  l.AccountActive,
		Amount:         l.Amount,
		Balance:        l.Balance,
	}
}

// ToStatementLineResponseSlice converts statement lines to responses
func ToStatementLineResponseSlice(lines []domain.StatementLine) []StatementLineResponse {
	res := make([]StatementLineResponse, len(lines))
	for i, l := range lines {
		res[i] = ToStatementLineResponse(l)
	}
	return res
}
