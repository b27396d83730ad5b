package models

import "time"

// User represents a user of the application.
type User struct {
	UserID string `db:"user_id"`
	Name   string `db:"name"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
