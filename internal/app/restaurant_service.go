package app

import (
	"context"

	"github.com/andreejbessmertnyj94/restaurants-test-project/internal/clock"
	"github.com/andreejbessmertnyj94/restaurants-test-project/internal/domain"
)

type RestaurantRepository interface {
	CreateRestaurant(ctx context.Context, restaurant domain.Restaurant) error
	ListRestaurantsByOwner(ctx context.Context, ownerID string) ([]domain.Restaurant, error)
	GetRestaurantByOwner(ctx context.Context, ownerID, restaurantID string) (*domain.Restaurant, error)
	UpdateRestaurantName(ctx context.Context, ownerID, restaurantID, name string) (*domain.Restaurant, error)
	DeleteRestaurant(ctx context.Context, ownerID, restaurantID string) (bool, error)
}

// RestaurantService handles owner-scoped restaurant CRUD. Every query
// carries the owner filter, so a restaurant belonging to someone else is
// indistinguishable from one that does not exist.
type RestaurantService struct {
	repo  RestaurantRepository
	clock clock.Clock
}

func NewRestaurantService(repo RestaurantRepository, clk clock.Clock) *RestaurantService {
	return &RestaurantService{
		repo:  repo,
		clock: clk,
	}
}

type CreateRestaurantInput struct {
	OwnerID string
	Name    string
}

func (s *RestaurantService) Create(ctx context.Context, in CreateRestaurantInput) (domain.Restaurant, error) {
	if in.Name == "" {
		return domain.Restaurant{}, domain.ErrNameRequired
	}

	restaurant := domain.Restaurant{
		ID:        newID(),
		Name:      in.Name,
		OwnerID:   in.OwnerID,
		CreatedAt: s.clock.Now(),
	}
	if err := s.repo.CreateRestaurant(ctx, restaurant); err != nil {
		return domain.Restaurant{}, err
	}
	return restaurant, nil
}

func (s *RestaurantService) List(ctx context.Context, ownerID string) ([]domain.Restaurant, error) {
	return s.repo.ListRestaurantsByOwner(ctx, ownerID)
}

func (s *RestaurantService) Get(ctx context.Context, ownerID, restaurantID string) (domain.Restaurant, error) {
	restaurant, err := s.repo.GetRestaurantByOwner(ctx, ownerID, restaurantID)
	if err != nil {
		return domain.Restaurant{}, err
	}
	if restaurant == nil {
		return domain.Restaurant{}, domain.ErrRestaurantNotFound
	}
	return *restaurant, nil
}

type UpdateRestaurantInput struct {
	OwnerID      string
	RestaurantID string
	Name         string
}

func (s *RestaurantService) Update(ctx context.Context, in UpdateRestaurantInput) (domain.Restaurant, error) {
	if in.Name == "" {
		return domain.Restaurant{}, domain.ErrNameRequired
	}

	restaurant, err := s.repo.UpdateRestaurantName(ctx, in.OwnerID, in.RestaurantID, in.Name)
	if err != nil {
		return domain.Restaurant{}, err
	}
	if restaurant == nil {
		return domain.Restaurant{}, domain.ErrRestaurantNotFound
	}
	return *restaurant, nil
}

func (s *RestaurantService) Delete(ctx context.Context, ownerID, restaurantID string) error {
	deleted, err := s.repo.DeleteRestaurant(ctx, ownerID, restaurantID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrRestaurantNotFound
	}
	return nil
}
