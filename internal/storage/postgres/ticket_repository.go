package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andreejbessmertnyj94/restaurants-test-project/internal/domain"
)

type TicketRepository struct {
	pool *pgxpool.Pool
}

func NewTicketRepository(pool *pgxpool.Pool) *TicketRepository {
	return &TicketRepository{pool: pool}
}

func (r *TicketRepository) RestaurantOwnedBy(ctx context.Context, ownerID, restaurantID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM restaurants WHERE owner_id = $1 AND id = $2)`

	var owned bool
	if err := r.pool.QueryRow(ctx, query, ownerID, restaurantID).Scan(&owned); err != nil {
		if isInvalidUUID(err) {
			return false, nil
		}
		return false, fmt.Errorf("check restaurant owner: %w", err)
	}
	return owned, nil
}

func (r *TicketRepository) CreateTicket(ctx context.Context, ticket domain.Ticket) error {
	const stmt = `
INSERT INTO tickets (id, name, max_purchase_count, purchase_count, restaurant_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, stmt,
		ticket.ID,
		ticket.Name,
		ticket.MaxPurchaseCount,
		ticket.PurchaseCount,
		ticket.RestaurantID,
		ticket.CreatedAt,
	)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrCounterInvariant
		}
		return fmt.Errorf("create ticket: %w", err)
	}
	return nil
}

func (r *TicketRepository) ListTicketsByRestaurant(ctx context.Context, restaurantID string) ([]domain.Ticket, error) {
	const query = `
SELECT id, name, max_purchase_count, purchase_count, restaurant_id, created_at
FROM tickets
WHERE restaurant_id = $1
ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	tickets := make([]domain.Ticket, 0)
	for rows.Next() {
		var t domain.Ticket
		if err := rows.Scan(&t.ID, &t.Name, &t.MaxPurchaseCount, &t.PurchaseCount, &t.RestaurantID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		tickets = append(tickets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, nil
}

func (r *TicketRepository) GetTicketByRestaurant(ctx context.Context, restaurantID, ticketID string) (*domain.Ticket, error) {
	const query = `
SELECT id, name, max_purchase_count, purchase_count, restaurant_id, created_at
FROM tickets
WHERE restaurant_id = $1 AND id = $2`

	var t domain.Ticket
	err := r.pool.QueryRow(ctx, query, restaurantID, ticketID).
		Scan(&t.ID, &t.Name, &t.MaxPurchaseCount, &t.PurchaseCount, &t.RestaurantID, &t.CreatedAt)
	if err != nil {
		if isInvalidUUID(err) || err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	return &t, nil
}

func (r *TicketRepository) UpdateTicket(ctx context.Context, ticket domain.Ticket) (bool, error) {
	const stmt = `
UPDATE tickets
SET name = $3, max_purchase_count = $4, purchase_count = $5
WHERE restaurant_id = $1 AND id = $2`

	tag, err := r.pool.Exec(ctx, stmt,
		ticket.RestaurantID,
		ticket.ID,
		ticket.Name,
		ticket.MaxPurchaseCount,
		ticket.PurchaseCount,
	)
	if err != nil {
		if isCheckViolation(err) {
			return false, domain.ErrCounterInvariant
		}
		if isInvalidUUID(err) {
			return false, nil
		}
		return false, fmt.Errorf("update ticket: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *TicketRepository) DeleteTicket(ctx context.Context, restaurantID, ticketID string) (bool, error) {
	const stmt = `DELETE FROM tickets WHERE restaurant_id = $1 AND id = $2`

	tag, err := r.pool.Exec(ctx, stmt, restaurantID, ticketID)
	if err != nil {
		if isInvalidUUID(err) {
			return false, nil
		}
		return false, fmt.Errorf("delete ticket: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
