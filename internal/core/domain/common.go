package domain

import "time"

// AuditFields is carried by every owner-scoped record. CreatedAt doubles as the
// tie-breaker when two records share a business date.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}
