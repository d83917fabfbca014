package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andreejbessmertnyj94/restaurants-test-project/internal/domain"
)

type CatalogRepository struct {
	pool *pgxpool.Pool
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

func (r *CatalogRepository) ListPublicTickets(ctx context.Context) ([]domain.PublicTicket, error) {
	const query = `
SELECT t.id, t.name, t.max_purchase_count, t.purchase_count, t.restaurant_id, t.created_at, r.name
FROM tickets t
JOIN restaurants r ON r.id = t.restaurant_id
ORDER BY t.created_at, t.id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list public tickets: %w", err)
	}
	defer rows.Close()

	tickets := make([]domain.PublicTicket, 0)
	for rows.Next() {
		var t domain.PublicTicket
		if err := rows.Scan(&t.ID, &t.Name, &t.MaxPurchaseCount, &t.PurchaseCount, &t.RestaurantID, &t.CreatedAt, &t.RestaurantName); err != nil {
			return nil, fmt.Errorf("scan public ticket: %w", err)
		}
		tickets = append(tickets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list public tickets: %w", err)
	}
	return tickets, nil
}

func (r *CatalogRepository) GetPublicTicket(ctx context.Context, ticketID string) (*domain.PublicTicket, error) {
	const query = `
SELECT t.id, t.name, t.max_purchase_count, t.purchase_count, t.restaurant_id, t.created_at, r.name
FROM tickets t
JOIN restaurants r ON r.id = t.restaurant_id
WHERE t.id = $1`

	var t domain.PublicTicket
	err := r.pool.QueryRow(ctx, query, ticketID).
		Scan(&t.ID, &t.Name, &t.MaxPurchaseCount, &t.PurchaseCount, &t.RestaurantID, &t.CreatedAt, &t.RestaurantName)
	if err != nil {
		if isInvalidUUID(err) || err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get public ticket: %w", err)
	}
	return &t, nil
}
