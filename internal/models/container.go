package models

import "time"

// Container is a row of the containers table.
type Container struct {
	ContainerID  string    `db:"container_id"`
	OwnerID      string    `db:"owner_id"`
	Name         string    `db:"name"`
	CreationDate time.Time `db:"creation_date"`
	AuditFields
}
