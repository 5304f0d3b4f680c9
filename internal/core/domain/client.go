package domain

// Person holds the identity fields shared by every person known to the system.
type Person struct {
	PersonID       int64  `json:"personID"`
	Name           string `json:"name"`
	Gender         string `json:"gender"` // "M" or "F"
	Age            int    `json:"age"`
	Identification string `json:"identification"` // Unique national ID
	Address        string `json:"address"`
	Phone          string `json:"phone"` // 10 digits
}

// Client is a person who can own accounts. Composition rather than a
// hierarchy: the person record is embedded, client-only fields sit alongside.
type Client struct {
	Person
	ClientID     int64  `json:"clientID"`
	PasswordHash string `json:"-"` // bcrypt hash of the client credential
	IsActive     bool   `json:"isActive"`
	AuditFields
}
