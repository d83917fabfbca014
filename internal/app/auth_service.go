package app

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/andreejbessmertnyj94/restaurants-test-project/internal/clock"
	"github.com/andreejbessmertnyj94/restaurants-test-project/internal/domain"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user domain.User) error
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByToken(ctx context.Context, token string) (*domain.User, error)
	GetTokenByUserID(ctx context.Context, userID string) (string, error)
	CreateToken(ctx context.Context, token, userID string, createdAt time.Time) error
}

// AuthService issues and resolves opaque bearer tokens. It is injected
// wherever authentication is needed; there is no process-global
// credential state.
type AuthService struct {
	repo  UserRepository
	clock clock.Clock
	cost  int
}

func NewAuthService(repo UserRepository, clk clock.Clock, opts ...AuthServiceOption) *AuthService {
	svc := &AuthService{
		repo:  repo,
		clock: clk,
		cost:  bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

type AuthServiceOption func(*AuthService)

// WithBcryptCost overrides the hashing cost (lowered in tests).
func WithBcryptCost(cost int) AuthServiceOption {
	return func(s *AuthService) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			s.cost = cost
		}
	}
}

type Credentials struct {
	Username string
	Password string
}

// Signup registers a new user and mints its bearer token.
func (s *AuthService) Signup(ctx context.Context, in Credentials) (string, error) {
	if in.Username == "" || in.Password == "" {
		return "", domain.ErrCredentialsRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return "", err
	}

	user := domain.User{
		ID:           newID(),
		Username:     in.Username,
		PasswordHash: string(hash),
		CreatedAt:    s.clock.Now(),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return "", err
	}

	token := newID()
	if err := s.repo.CreateToken(ctx, token, user.ID, s.clock.Now()); err != nil {
		return "", err
	}
	return token, nil
}

// Login verifies the credentials and returns the user's token, minting
// one when the user has none yet.
func (s *AuthService) Login(ctx context.Context, in Credentials) (string, error) {
	if in.Username == "" || in.Password == "" {
		return "", domain.ErrCredentialsRequired
	}

	user, err := s.repo.GetUserByUsername(ctx, in.Username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.repo.GetTokenByUserID(ctx, user.ID)
	if err != nil {
		return "", err
	}
	if token == "" {
		token = newID()
		if err := s.repo.CreateToken(ctx, token, user.ID, s.clock.Now()); err != nil {
			return "", err
		}
	}
	return token, nil
}

// Authenticate resolves a bearer token to the owning user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (domain.User, error) {
	if token == "" {
		return domain.User{}, domain.ErrUnauthorized
	}
	user, err := s.repo.GetUserByToken(ctx, token)
	if err != nil {
		return domain.User{}, err
	}
	if user == nil {
		return domain.User{}, domain.ErrUnauthorized
	}
	return *user, nil
}
