package domain

import "time"

// AuditFields are embedded in persisted aggregates to track creation and
// last-modification times.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
