package services

import "context"

// ClientDirectory resolves client display names from the client-person
// service. Implementations may fail; callers own the fallback policy.
type ClientDirectory interface {
	GetClientName(ctx context.Context, clientID int64) (string, error)
}
