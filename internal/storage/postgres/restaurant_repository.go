package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andreejbessmertnyj94/restaurants-test-project/internal/domain"
)

// RestaurantRepository scopes every statement by owner_id in the WHERE
// clause, so foreign rows never surface — not even as an existence hint.
type RestaurantRepository struct {
	pool *pgxpool.Pool
}

func NewRestaurantRepository(pool *pgxpool.Pool) *RestaurantRepository {
	return &RestaurantRepository{pool: pool}
}

func (r *RestaurantRepository) CreateRestaurant(ctx context.Context, restaurant domain.Restaurant) error {
	const stmt = `
INSERT INTO restaurants (id, name, owner_id, created_at)
VALUES ($1, $2, $3, $4)`

	_, err := r.pool.Exec(ctx, stmt, restaurant.ID, restaurant.Name, restaurant.OwnerID, restaurant.CreatedAt)
	if err != nil {
		return fmt.Errorf("create restaurant: %w", err)
	}
	return nil
}

func (r *RestaurantRepository) ListRestaurantsByOwner(ctx context.Context, ownerID string) ([]domain.Restaurant, error) {
	const query = `
SELECT id, name, owner_id, created_at
FROM restaurants
WHERE owner_id = $1
ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	defer rows.Close()

	restaurants := make([]domain.Restaurant, 0)
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.OwnerID, &rest.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		restaurants = append(restaurants, rest)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	return restaurants, nil
}

func (r *RestaurantRepository) GetRestaurantByOwner(ctx context.Context, ownerID, restaurantID string) (*domain.Restaurant, error) {
	const query = `
SELECT id, name, owner_id, created_at
FROM restaurants
WHERE owner_id = $1 AND id = $2`

	var rest domain.Restaurant
	err := r.pool.QueryRow(ctx, query, ownerID, restaurantID).
		Scan(&rest.ID, &rest.Name, &rest.OwnerID, &rest.CreatedAt)
	if err != nil {
		if isInvalidUUID(err) || err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get restaurant: %w", err)
	}
	return &rest, nil
}

func (r *RestaurantRepository) UpdateRestaurantName(ctx context.Context, ownerID, restaurantID, name string) (*domain.Restaurant, error) {
	const stmt = `
UPDATE restaurants
SET name = $3
WHERE owner_id = $1 AND id = $2
RETURNING id, name, owner_id, created_at`

	var rest domain.Restaurant
	err := r.pool.QueryRow(ctx, stmt, ownerID, restaurantID, name).
		Scan(&rest.ID, &rest.Name, &rest.OwnerID, &rest.CreatedAt)
	if err != nil {
		if isInvalidUUID(err) || err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("update restaurant: %w", err)
	}
	return &rest, nil
}

func (r *RestaurantRepository) DeleteRestaurant(ctx context.Context, ownerID, restaurantID string) (bool, error) {
	const stmt = `DELETE FROM restaurants WHERE owner_id = $1 AND id = $2`

	tag, err := r.pool.Exec(ctx, stmt, ownerID, restaurantID)
	if err != nil {
		if isInvalidUUID(err) {
			return false, nil
		}
		return false, fmt.Errorf("delete restaurant: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
