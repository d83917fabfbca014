package app

import (
	"context"

	"github.com/andreejbessmertnyj94/restaurants-test-project/internal/clock"
	"github.com/andreejbessmertnyj94/restaurants-test-project/internal/domain"
)

type TicketRepository interface {
	RestaurantOwnedBy(ctx context.Context, ownerID, restaurantID string) (bool, error)
	CreateTicket(ctx context.Context, ticket domain.Ticket) error
	ListTicketsByRestaurant(ctx context.Context, restaurantID string) ([]domain.Ticket, error)
	GetTicketByRestaurant(ctx context.Context, restaurantID, ticketID string) (*domain.Ticket, error)
	UpdateTicket(ctx context.Context, ticket domain.Ticket) (bool, error)
	DeleteTicket(ctx context.Context, restaurantID, ticketID string) (bool, error)
}

// TicketService handles ticket CRUD scoped through the parent
// restaurant's owner. Reads report ErrRestaurantNotFound for foreign
// restaurants; creation under a foreign restaurant reports
// ErrRestaurantForbidden instead.
type TicketService struct {
	repo  TicketRepository
	clock clock.Clock
}

func NewTicketService(repo TicketRepository, clk clock.Clock) *TicketService {
	return &TicketService{
		repo:  repo,
		clock: clk,
	}
}

type CreateTicketInput struct {
	OwnerID          string
	RestaurantID     string
	Name             string
	MaxPurchaseCount int
	PurchaseCount    int
}

func (s *TicketService) Create(ctx context.Context, in CreateTicketInput) (domain.Ticket, error) {
	if in.Name == "" {
		return domain.Ticket{}, domain.ErrNameRequired
	}
	if err := domain.CheckCounters(in.PurchaseCount, in.MaxPurchaseCount); err != nil {
		return domain.Ticket{}, err
	}

	owned, err := s.repo.RestaurantOwnedBy(ctx, in.OwnerID, in.RestaurantID)
	if err != nil {
		return domain.Ticket{}, err
	}
	if !owned {
		return domain.Ticket{}, domain.ErrRestaurantForbidden
	}

	ticket := domain.Ticket{
		ID:               newID(),
		Name:             in.Name,
		MaxPurchaseCount: in.MaxPurchaseCount,
		PurchaseCount:    in.PurchaseCount,
		RestaurantID:     in.RestaurantID,
		CreatedAt:        s.clock.Now(),
	}
	if err := s.repo.CreateTicket(ctx, ticket); err != nil {
		return domain.Ticket{}, err
	}
	return ticket, nil
}

func (s *TicketService) List(ctx context.Context, ownerID, restaurantID string) ([]domain.Ticket, error) {
	owned, err := s.repo.RestaurantOwnedBy(ctx, ownerID, restaurantID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, domain.ErrRestaurantNotFound
	}
	return s.repo.ListTicketsByRestaurant(ctx, restaurantID)
}

func (s *TicketService) Get(ctx context.Context, ownerID, restaurantID, ticketID string) (domain.Ticket, error) {
	owned, err := s.repo.RestaurantOwnedBy(ctx, ownerID, restaurantID)
	if err != nil {
		return domain.Ticket{}, err
	}
	if !owned {
		return domain.Ticket{}, domain.ErrRestaurantNotFound
	}

	ticket, err := s.repo.GetTicketByRestaurant(ctx, restaurantID, ticketID)
	if err != nil {
		return domain.Ticket{}, err
	}
	if ticket == nil {
		return domain.Ticket{}, domain.ErrTicketNotFound
	}
	return *ticket, nil
}

type UpdateTicketInput struct {
	OwnerID          string
	RestaurantID     string
	TicketID         string
	Name             string
	MaxPurchaseCount int
	PurchaseCount    int
}

func (s *TicketService) Update(ctx context.Context, in UpdateTicketInput) (domain.Ticket, error) {
	if in.Name == "" {
		return domain.Ticket{}, domain.ErrNameRequired
	}
	if err := domain.CheckCounters(in.PurchaseCount, in.MaxPurchaseCount); err != nil {
		return domain.Ticket{}, err
	}

	owned, err := s.repo.RestaurantOwnedBy(ctx, in.OwnerID, in.RestaurantID)
	if err != nil {
		return domain.Ticket{}, err
	}
	if !owned {
		return domain.Ticket{}, domain.ErrRestaurantNotFound
	}

	ticket := domain.Ticket{
		ID:               in.TicketID,
		Name:             in.Name,
		MaxPurchaseCount: in.MaxPurchaseCount,
		PurchaseCount:    in.PurchaseCount,
		RestaurantID:     in.RestaurantID,
	}
	updated, err := s.repo.UpdateTicket(ctx, ticket)
	if err != nil {
		return domain.Ticket{}, err
	}
	if !updated {
		return domain.Ticket{}, domain.ErrTicketNotFound
	}
	return ticket, nil
}

func (s *TicketService) Delete(ctx context.Context, ownerID, restaurantID, ticketID string) error {
	owned, err := s.repo.RestaurantOwnedBy(ctx, ownerID, restaurantID)
	if err != nil {
		return err
	}
	if !owned {
		return domain.ErrRestaurantNotFound
	}

	deleted, err := s.repo.DeleteTicket(ctx, restaurantID, ticketID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrTicketNotFound
	}
	return nil
}
