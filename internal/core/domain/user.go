package domain

import "time"

// User owns currencies, containers, transactions and rate datums. Every
// valuation is scoped to one user; a soft-deleted user owns nothing.
type User struct {
	UserID    string     `json:"userID"`
	Name      string     `json:"name"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
	AuditFields
}

// Active reports whether the user has not been soft-deleted.
func (u User) Active() bool {
	return u.DeletedAt == nil
}
