package models

import "time"

// Client is the DB row shape for the clients table. Person fields are stored
// inline on the same row.
type Client struct {
	ClientID       int64     `db:"client_id"`
	Name           string    `db:"name"`
	Gender         string    `db:"gender"`
	Age            int       `db:"age"`
	Identification string    `db:"identification"`
	Address        string    `db:"address"`
	Phone          string    `db:"phone"`
	PasswordHash   string    `db:"password_hash"`
	IsActive       bool      `db:"is_active"`
	CreatedAt      time.Time `db:"created_at"`
	LastUpdatedAt  time.Time `db:"last_updated_at"`
}
