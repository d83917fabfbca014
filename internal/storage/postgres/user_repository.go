package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andreejbessmertnyj94/restaurants-test-project/internal/domain"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) CreateUser(ctx context.Context, user domain.User) error {
	const stmt = `
INSERT INTO users (id, username, password_hash, created_at)
VALUES ($1, $2, $3, $4)`

	_, err := r.pool.Exec(ctx, stmt, user.ID, user.Username, user.PasswordHash, user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	const query = `
SELECT id, username, password_hash, created_at
FROM users
WHERE username = $1`

	var u domain.User
	err := r.pool.QueryRow(ctx, query, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) GetUserByToken(ctx context.Context, token string) (*domain.User, error) {
	const query = `
SELECT u.id, u.username, u.password_hash, u.created_at
FROM users u
JOIN tokens t ON t.user_id = u.id
WHERE t.token = $1`

	var u domain.User
	err := r.pool.QueryRow(ctx, query, token).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if isInvalidUUID(err) || err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by token: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) GetTokenByUserID(ctx context.Context, userID string) (string, error) {
	const query = `SELECT token FROM tokens WHERE user_id = $1 LIMIT 1`

	var token string
	err := r.pool.QueryRow(ctx, query, userID).Scan(&token)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("get token by user: %w", err)
	}
	return token, nil
}

func (r *UserRepository) CreateToken(ctx context.Context, token, userID string, createdAt time.Time) error {
	const stmt = `INSERT INTO tokens (token, user_id, created_at) VALUES ($1, $2, $3)`

	if _, err := r.pool.Exec(ctx, stmt, token, userID, createdAt); err != nil {
		return fmt.Errorf("create token: %w", err)
	}
	return nil
}
