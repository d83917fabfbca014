package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/andreejbessmertnyj94/restaurants-test-project/internal/domain"
	"github.com/andreejbessmertnyj94/restaurants-test-project/internal/testutil"
)

func TestUserRepository(t *testing.T) {
	pool := testutil.NewTestPool(t)
	repo := NewUserRepository(pool)
	testutil.ApplyMigrations(t, context.Background(), pool)

	t.Run("CreateUser rejects duplicate usernames", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		user := domain.User{ID: uuid.NewString(), Username: "alice", PasswordHash: "hash", CreatedAt: time.Now().UTC()}
		if err := repo.CreateUser(ctx, user); err != nil {
			t.Fatalf("create user: %v", err)
		}

		dup := domain.User{ID: uuid.NewString(), Username: "alice", PasswordHash: "other", CreatedAt: time.Now().UTC()}
		if err := repo.CreateUser(ctx, dup); err != domain.ErrUsernameTaken {
			t.Fatalf("expected ErrUsernameTaken, got %v", err)
		}
	})

	t.Run("GetUserByUsername", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		id := testutil.InsertUser(t, ctx, pool, "bob", "hash")

		user, err := repo.GetUserByUsername(ctx, "bob")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if user == nil || user.ID != id {
			t.Fatalf("unexpected user: %+v", user)
		}

		user, err = repo.GetUserByUsername(ctx, "nobody")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if user != nil {
			t.Fatalf("expected nil, got %+v", user)
		}
	})

	t.Run("token round trip", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		userID := testutil.InsertUser(t, ctx, pool, "carol", "hash")

		token := uuid.NewString()
		issuedAt := time.Now().UTC().Truncate(time.Microsecond)
		if err := repo.CreateToken(ctx, token, userID, issuedAt); err != nil {
			t.Fatalf("create token: %v", err)
		}

		var storedAt time.Time
		if err := pool.QueryRow(ctx, `SELECT created_at FROM tokens WHERE token = $1`, token).Scan(&storedAt); err != nil {
			t.Fatalf("query token created_at: %v", err)
		}
		if !storedAt.Equal(issuedAt) {
			t.Fatalf("expected created_at %v, got %v", issuedAt, storedAt)
		}

		got, err := repo.GetTokenByUserID(ctx, userID)
		if err != nil {
			t.Fatalf("get token: %v", err)
		}
		if got != token {
			t.Fatalf("expected token %q, got %q", token, got)
		}

		user, err := repo.GetUserByToken(ctx, token)
		if err != nil {
			t.Fatalf("get user by token: %v", err)
		}
		if user == nil || user.Username != "carol" {
			t.Fatalf("unexpected user: %+v", user)
		}

		user, err = repo.GetUserByToken(ctx, uuid.NewString())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if user != nil {
			t.Fatalf("expected nil for unknown token, got %+v", user)
		}

		user, err = repo.GetUserByToken(ctx, "not-a-uuid")
		if err != nil {
			t.Fatalf("expected no error for malformed token, got %v", err)
		}
		if user != nil {
			t.Fatalf("expected nil for malformed token, got %+v", user)
		}
	})
}
