package mapping

import (
	"github.com/SscSPs/networth_tracker/internal/core/domain"
	"github.com/SscSPs/networth_tracker/internal/models"
)

// ToModelContainer converts a domain Container to a model Container
func ToModelContainer(d domain.Container) models.Container {
	return models.Container{
		ContainerID:  d.ContainerID,
		OwnerID:      d.OwnerID,
		Name:         d.Name,
		CreationDate: d.CreationDate,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainContainer converts a model Container to a domain Container
func ToDomainContainer(m models.Container) domain.Container {
	return domain.Container{
		ContainerID:  m.ContainerID,
		OwnerID:      m.OwnerID,
		Name:         m.Name,
		CreationDate: m.CreationDate,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainContainerSlice converts a slice of model Containers to a slice of domain Containers
func ToDomainContainerSlice(ms []models.Container) []domain.Container {
	ds := make([]domain.Container, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainContainer(m)
	}
	return ds
}
