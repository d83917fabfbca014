package app

import (
	"context"

	"github.com/andreejbessmertnyj94/restaurants-test-project/internal/domain"
)

type CatalogRepository interface {
	ListPublicTickets(ctx context.Context) ([]domain.PublicTicket, error)
	GetPublicTicket(ctx context.Context, ticketID string) (*domain.PublicTicket, error)
}

// CatalogService serves the unauthenticated ticket catalog across all
// restaurants.
type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) List(ctx context.Context) ([]domain.PublicTicket, error) {
	return s.repo.ListPublicTickets(ctx)
}

func (s *CatalogService) Get(ctx context.Context, ticketID string) (domain.PublicTicket, error) {
	ticket, err := s.repo.GetPublicTicket(ctx, ticketID)
	if err != nil {
		return domain.PublicTicket{}, err
	}
	if ticket == nil {
		return domain.PublicTicket{}, domain.ErrTicketNotFound
	}
	return *ticket, nil
}
