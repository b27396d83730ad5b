package pgsql

import (
	"context"
	"fmt"
	"strconv"

	"github.com/SscSPs/networth_tracker/internal/apperrors"
	"github.com/SscSPs/networth_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/networth_tracker/internal/models"
	"github.com/SscSPs/networth_tracker/internal/utils/mapping"
	"github.com/SscSPs/networth_tracker/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const rateDatumColumns = `rate_datum_id, owner_id, amount, ref_currency_id, ref_amount_currency_id, date,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxRateDatumRepository struct {
	BaseRepository
}

func newPgxRateDatumRepository(pool *pgxpool.Pool) portsrepo.RateDatumRepositoryFacade {
	return &PgxRateDatumRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RateDatumRepositoryFacade = (*PgxRateDatumRepository)(nil)

func scanRateDatum(row pgx.Row) (models.RateDatum, error) {
	var d models.RateDatum
	err := row.Scan(
		&d.RateDatumID,
		&d.OwnerID,
		&d.Amount,
		&d.RefCurrencyID,
		&d.RefAmountCurrencyID,
		&d.Date,
		&d.CreatedAt,
		&d.CreatedBy,
		&d.LastUpdatedAt,
		&d.LastUpdatedBy,
	)
	return d, err
}

// SaveRateDatum persists a new datum.
func (r *PgxRateDatumRepository) SaveRateDatum(ctx context.Context, datum domain.RateDatum) error {
	m := mapping.ToModelRateDatum(datum)

	query := `
		INSERT INTO currency_rate_datums (` + rateDatumColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RateDatumID,
		m.OwnerID,
		m.Amount,
		m.RefCurrencyID,
		m.RefAmountCurrencyID,
		m.Date,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return fmt.Errorf("rate datum %s references a missing currency: %w", m.RateDatumID, apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to save rate datum %s: %w", m.RateDatumID, err)
	}
	return nil
}

// ListRateDatumsByCurrency retrieves every datum of the currency, oldest first.
func (r *PgxRateDatumRepository) ListRateDatumsByCurrency(ctx context.Context, ownerID, currencyID string) ([]domain.RateDatum, error) {
	query := `
		SELECT ` + rateDatumColumns + `
		FROM currency_rate_datums
		WHERE owner_id = $1 AND ref_currency_id = $2
		ORDER BY date, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID, currencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rate datums of currency %s: %w", currencyID, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.RateDatum, error) {
		return scanRateDatum(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan rate datums: %w", err)
	}
	return mapping.ToDomainRateDatumSlice(ms), nil
}

// ListRateDatumsPage retrieves datums of the currency newest first using token-based pagination.
// It returns the datums, a token for the next page, and an error.
func (r *PgxRateDatumRepository) ListRateDatumsPage(ctx context.Context, ownerID, currencyID string, limit int, nextToken *string) ([]domain.RateDatum, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// One extra row tells whether another page exists.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT ` + rateDatumColumns + `
		FROM currency_rate_datums
		WHERE owner_id = $1 AND ref_currency_id = $2
	`
	orderByClause := `ORDER BY date DESC, created_at DESC`
	args := []interface{}{ownerID, currencyID}

	query := baseQuery
	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` AND (date, created_at) < ($3, $4)`
		args = append(args, lastDate, lastCreatedAt)
	}
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query rate datums for currency "+currencyID, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.RateDatum, error) {
		return scanRateDatum(row)
	})
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to scan rate datum rows for currency "+currencyID, err)
	}

	var nextTokenVal *string
	if len(ms) > limit {
		// The token points at the last datum of this page; the next page starts after it.
		last := ms[limit-1]
		token := pagination.EncodeToken(last.Date, last.CreatedAt)
		nextTokenVal = &token
		ms = ms[:limit]
	}

	return mapping.ToDomainRateDatumSlice(ms), nextTokenVal, nil
}
