package dto

import (
	"github.com/banking-ms/account-movement-service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Number         string             `json:"number" binding:"required,len=6,numeric"`
	Kind           domain.AccountKind `json:"kind" binding:"required,oneof=SAVINGS CHECKING"`
	InitialBalance decimal.Decimal    `json:"initialBalance" binding:"required"`
	IsActive       *bool              `json:"isActive"` // Defaults to true when omitted
	ClientID       int64              `json:"clientID" binding:"required"`
}

// UpdateAccountRequest defines the data allowed when updating an account.
// Pointers distinguish "not provided" from zero values.
type UpdateAccountRequest struct {
	Number         *string             `json:"number" binding:"omitempty,len=6,numeric"`
	Kind           *domain.AccountKind `json:"kind" binding:"omitempty,oneof=SAVINGS CHECKING"`
	InitialBalance *decimal.Decimal    `json:"initialBalance"`
	IsActive       *bool               `json:"isActive"`
	ClientID       *int64              `json:"clientID"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID      int64              `json:"accountID"`
	Number         string             `json:"number"`
	Kind           domain.AccountKind `json:"kind"`
	InitialBalance decimal.Decimal    `json:"initialBalance"`
	IsActive       bool               `json:"isActive"`
	ClientID       int64              `json:"clientID"`
}

// BalanceResponse defines the data returned for a balance query.
type BalanceResponse struct {
	AccountID int64           `json:"accountID"`
	Balance   decimal.Decimal `json:"balance"`
}

// ToAccountResponse converts a domain.Account to AccountResponse
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		Number:         acc.Number,
		Kind:           acc.Kind,
		InitialBalance: acc.InitialBalance,
		IsActive:       acc.IsActive,
		ClientID:       acc.ClientID,
	}
}

// ToAccountResponseSlice converts a slice of domain.Account to responses
func ToAccountResponseSlice(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
