package domain

import "time"

// Container is an account. Its balances are derived from transaction fragments
// and never stored.
type Container struct {
	ContainerID  string    `json:"containerId"`
	OwnerID      string    `json:"ownerId"`
	Name         string    `json:"name"`
	CreationDate time.Time `json:"creationDate"`
	AuditFields
}
