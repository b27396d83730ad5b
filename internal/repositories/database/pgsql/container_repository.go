package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/networth_tracker/internal/models"
	"github.com/SscSPs/networth_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxContainerRepository struct {
	BaseRepository
}

func newPgxContainerRepository(pool *pgxpool.Pool) portsrepo.ContainerReader {
	return &PgxContainerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ContainerReader = (*PgxContainerRepository)(nil)

// ListContainersByOwner retrieves every container of the owner.
func (r *PgxContainerRepository) ListContainersByOwner(ctx context.Context, ownerID string) ([]domain.Container, error) {
	query := `
		SELECT container_id, owner_id, name, creation_date, created_at, created_by, last_updated_at, last_updated_by
		FROM containers
		WHERE owner_id = $1
		ORDER BY creation_date, container_id;
	`
	return r.collect(ctx, query, ownerID)
}

// FindContainersByIDs retrieves the listed containers of the owner.
func (r *PgxContainerRepository) FindContainersByIDs(ctx context.Context, ownerID string, containerIDs []string) ([]domain.Container, error) {
	if len(containerIDs) == 0 {
		return []domain.Container{}, nil
	}
	query := `
		SELECT container_id, owner_id, name, creation_date, created_at, created_by, last_updated_at, last_updated_by
		FROM containers
		WHERE owner_id = $1 AND container_id = ANY($2)
		ORDER BY container_id;
	`
	return r.collect(ctx, query, ownerID, containerIDs)
}

func (r *PgxContainerRepository) collect(ctx context.Context, query string, args ...interface{}) ([]domain.Container, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query containers: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Container])
	if err != nil {
		return nil, fmt.Errorf("failed to scan containers: %w", err)
	}
	return mapping.ToDomainContainerSlice(ms), nil
}
