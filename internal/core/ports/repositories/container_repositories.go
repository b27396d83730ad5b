package repositories

import (
	"context"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
)

// ContainerReader defines read operations for containers
type ContainerReader interface {
	// ListContainersByOwner retrieves every container of the owner.
	ListContainersByOwner(ctx context.Context, ownerID string) ([]domain.Container, error)

	// FindContainersByIDs retrieves the listed containers of the owner. Ids the
	// owner does not have are silently absent from the result.
	FindContainersByIDs(ctx context.Context, ownerID string, containerIDs []string) ([]domain.Container, error)
}
