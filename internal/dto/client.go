package dto

import (
	"github.com/banking-ms/account-movement-service/internal/core/domain"
)

// CreateClientRequest defines the data needed to register a client.
type CreateClientRequest struct {
	Name           string `json:"name" binding:"required,max=100"`
	Gender         string `json:"gender" binding:"required,oneof=M F"`
	Age            int    `json:"age" binding:"required,gt=0"`
	Identification string `json:"identification" binding:"required,max=20"`
	Address        string `json:"address" binding:"required,max=200"`
	Phone          string `json:"phone" binding:"required,len=10,numeric"`
	Password       string `json:"password" binding:"required,min=4,max=20"`
	IsActive       *bool  `json:"isActive"` // Defaults to true when omitted
}

// UpdateClientRequest defines the data allowed when updating a client.
type UpdateClientRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	Gender   *string `json:"gender" binding:"omitempty,oneof=M F"`
	Age      *int    `json:"age" binding:"omitempty,gt=0"`
	Address  *string `json:"address" binding:"omitempty,max=200"`
	Phone    *string `json:"phone" binding:"omitempty,len=10,numeric"`
	Password *string `json:"password" binding:"omitempty,min=4,max=20"`
	IsActive *bool   `json:"isActive"`
}

// ClientResponse defines the data returned for a client. The credential hash
// is never exposed.
type ClientResponse struct {
	ClientID       int64  `json:"clientID"`
	Name           string `json:"name"`
	Gender         string `json:"gender"`
	Age            int    `json:"age"`
	Identification string `json:"identification"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	IsActive       bool   `json:"isActive"`
}

// ToClientResponse converts a domain.Client to ClientResponse
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:       c.ClientID,
		Name:           c.Name,
		Gender:         c.Gender,
		Age:            c.Age,
		Identification: c.Identification,
		Address:        c.Address,
		Phone:          c.Phone,
		IsActive:       c.IsActive,
	}
}

// ToClientResponseSlice converts a slice of domain.Client to responses
func ToClientResponseSlice(clients []domain.Client) []ClientResponse {
	res := make([]ClientResponse, len(clients))
	for i := range clients {
		res[i] = ToClientResponse(&clients[i])
	}
	return res
}
