package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/networth_tracker/internal/apperrors"
	"github.com/SscSPs/networth_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/networth_tracker/internal/models"
	"github.com/SscSPs/networth_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const currencyColumns = `currency_id, owner_id, name, ticker, is_base, fallback_rate_amount, fallback_rate_currency_id,
		last_rate_cron_update_time, created_at, created_by, last_updated_at, last_updated_by`

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryFacade {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

func scanCurrency(row pgx.Row) (models.Currency, error) {
	var c models.Currency
	err := row.Scan(
		&c.CurrencyID,
		&c.OwnerID,
		&c.Name,
		&c.Ticker,
		&c.IsBase,
		&c.FallbackRateAmount,
		&c.FallbackRateCurrencyID,
		&c.LastRateCronUpdateTime,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	return c, err
}

// SaveCurrency inserts a new currency. The partial unique index on
// (owner_id) WHERE is_base rejects a second base currency.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	m := mapping.ToModelCurrency(currency)

	query := `
		INSERT INTO currencies (` + currencyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CurrencyID,
		m.OwnerID,
		m.Name,
		m.Ticker,
		m.IsBase,
		m.FallbackRateAmount,
		m.FallbackRateCurrencyID,
		m.LastRateCronUpdateTime,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return fmt.Errorf("currency %s conflicts with an existing one: %w", m.CurrencyID, apperrors.ErrDuplicate)
		}
		if isPgError(err, pgForeignKeyViolation) {
			return fmt.Errorf("currency %s references a missing row: %w", m.CurrencyID, apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to save currency %s: %w", m.CurrencyID, err)
	}
	return nil
}

// UpdateCurrencyFallback replaces the fallback rate of an existing currency.
func (r *PgxCurrencyRepository) UpdateCurrencyFallback(ctx context.Context, currency domain.Currency) error {
	m := mapping.ToModelCurrency(currency)

	query := `
		UPDATE currencies
		SET fallback_rate_amount = $1, fallback_rate_currency_id = $2, last_updated_at = $3, last_updated_by = $4
		WHERE currency_id = $5 AND owner_id = $6;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.FallbackRateAmount,
		m.FallbackRateCurrencyID,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.CurrencyID,
		m.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update fallback of currency %s: %w", m.CurrencyID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindCurrencyByID retrieves one currency of the owner.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, ownerID, currencyID string) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE currency_id = $1 AND owner_id = $2;`

	m, err := scanCurrency(r.Pool.QueryRow(ctx, query, currencyID, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency %s: %w", currencyID, err)
	}

	d := mapping.ToDomainCurrency(m)
	return &d, nil
}

// ListCurrenciesByOwner retrieves every currency of the owner.
func (r *PgxCurrencyRepository) ListCurrenciesByOwner(ctx context.Context, ownerID string) ([]domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE owner_id = $1 ORDER BY created_at, currency_id;`

	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies of owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		return scanCurrency(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return mapping.ToDomainCurrencySlice(ms), nil
}
