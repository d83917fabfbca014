package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andreejbessmertnyj94/restaurants-test-project/internal/domain"
)

// PurchaseRepository gives the purchase mutator exclusive access to one
// ticket row for the duration of a read-modify-write transaction.
type PurchaseRepository struct {
	pool *pgxpool.Pool
}

func NewPurchaseRepository(pool *pgxpool.Pool) *PurchaseRepository {
	return &PurchaseRepository{pool: pool}
}

func (r *PurchaseRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, fn)
}

func (r *PurchaseRepository) GetTicketForUpdate(ctx context.Context, ticketID string) (domain.PublicTicket, error) {
	const query = `
SELECT t.id, t.name, t.max_purchase_count, t.purchase_count, t.restaurant_id, t.created_at, r.name
FROM tickets t
JOIN restaurants r ON r.id = t.restaurant_id
WHERE t.id = $1
FOR UPDATE OF t`

	var t domain.PublicTicket
	err := r.queryRow(ctx, query, ticketID).
		Scan(&t.ID, &t.Name, &t.MaxPurchaseCount, &t.PurchaseCount, &t.RestaurantID, &t.CreatedAt, &t.RestaurantName)
	if err != nil {
		if isInvalidUUID(err) || err == pgx.ErrNoRows {
			return domain.PublicTicket{}, domain.ErrTicketNotFound
		}
		return domain.PublicTicket{}, classifyTransient(fmt.Errorf("get ticket for update: %w", err))
	}
	return t, nil
}

func (r *PurchaseRepository) SetPurchaseCount(ctx context.Context, ticketID string, purchaseCount int) error {
	const stmt = `UPDATE tickets SET purchase_count = $2 WHERE id = $1`

	tag, err := r.exec(ctx, stmt, ticketID, purchaseCount)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrCounterInvariant
		}
		return classifyTransient(fmt.Errorf("set purchase count: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTicketNotFound
	}
	return nil
}

func (r *PurchaseRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.pool.Exec(ctx, sql, args...)
}

func (r *PurchaseRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}
