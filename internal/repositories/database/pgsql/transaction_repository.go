package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/networth_tracker/internal/models"
	"github.com/SscSPs/networth_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionReader {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionReader = (*PgxTransactionRepository)(nil)

// ListTransactionsByOwner retrieves the owner's transactions with their
// fragments, ordered by creation date. Both statements run in one read-only
// snapshot so fragments always match their transactions.
func (r *PgxTransactionRepository) ListTransactionsByOwner(ctx context.Context, ownerID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	tx, err := r.BeginSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction read for owner %s: %w", ownerID, err)
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	txns, err := r.listTransactions(ctx, tx, ownerID, filter)
	if err != nil {
		return nil, err
	}
	if len(txns) == 0 {
		return []domain.Transaction{}, nil
	}

	ids := make([]string, len(txns))
	for i, t := range txns {
		ids[i] = t.TransactionID
	}
	fragments, err := r.listFragments(ctx, tx, ids)
	if err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	result := make([]domain.Transaction, len(txns))
	for i, t := range txns {
		if result[i], err = mapping.ToDomainTransaction(t, fragments[t.TransactionID]); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (r *PgxTransactionRepository) listTransactions(ctx context.Context, tx pgx.Tx, ownerID string, filter portsrepo.TransactionFilter) ([]models.Transaction, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT t.transaction_id, t.owner_id, t.title, t.description, t.creation_date, t.txn_type_id,
		       t.excluded_from_incomes_expenses, t.created_at, t.created_by, t.last_updated_at, t.last_updated_by
		FROM transactions t
		WHERE t.owner_id = $1`)
	args := []interface{}{ownerID}

	if filter.AtOrBefore != nil {
		args = append(args, *filter.AtOrBefore)
		sb.WriteString(" AND t.creation_date <= $" + strconv.Itoa(len(args)))
	}
	if len(filter.ContainerIDs) > 0 {
		args = append(args, filter.ContainerIDs)
		n := strconv.Itoa(len(args))
		sb.WriteString(` AND EXISTS (
			SELECT 1 FROM transaction_fragments f
			WHERE f.transaction_id = t.transaction_id
			  AND (f.from_container_id = ANY($` + n + `) OR f.to_container_id = ANY($` + n + `)))`)
	}
	// created_at keeps same-date transactions in the order they were recorded
	sb.WriteString(" ORDER BY t.creation_date, t.created_at;")

	rows, err := tx.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions of owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	var txns []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(
			&t.TransactionID,
			&t.OwnerID,
			&t.Title,
			&t.Description,
			&t.CreationDate,
			&t.TxnTypeID,
			&t.ExcludedFromIncomesExpenses,
			&t.CreatedAt,
			&t.CreatedBy,
			&t.LastUpdatedAt,
			&t.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}

// listFragments groups the fragments of the given transactions by transaction id.
func (r *PgxTransactionRepository) listFragments(ctx context.Context, tx pgx.Tx, transactionIDs []string) (map[string][]models.TransactionFragment, error) {
	query := `
		SELECT transaction_id, position, from_amount, from_container_id, from_currency_id,
		       to_amount, to_container_id, to_currency_id
		FROM transaction_fragments
		WHERE transaction_id = ANY($1)
		ORDER BY transaction_id, position;
	`
	rows, err := tx.Query(ctx, query, transactionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction fragments: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.TransactionFragment])
	if err != nil {
		return nil, fmt.Errorf("failed to scan transaction fragments: %w", err)
	}

	grouped := make(map[string][]models.TransactionFragment, len(transactionIDs))
	for _, f := range ms {
		grouped[f.TransactionID] = append(grouped[f.TransactionID], f)
	}
	return grouped, nil
}
