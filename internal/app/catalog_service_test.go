package app

import (
	"context"
	"testing"

	"github.com/andreejbessmertnyj94/restaurants-test-project/internal/domain"
)

func TestCatalogService(t *testing.T) {
	t.Parallel()

	tickets := []domain.PublicTicket{
		{
			Ticket:         domain.Ticket{ID: "t1", Name: "Lunch", MaxPurchaseCount: 5, PurchaseCount: 2, RestaurantID: "r1"},
			RestaurantName: "Trattoria",
		},
		{
			Ticket:         domain.Ticket{ID: "t2", Name: "Dinner", MaxPurchaseCount: 3, PurchaseCount: 3, RestaurantID: "r2"},
			RestaurantName: "Bistro",
		},
	}
	svc := NewCatalogService(&fakeCatalogRepo{tickets: tickets})

	t.Run("list exposes all tickets regardless of owner", func(t *testing.T) {
		got, err := svc.List(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 tickets, got %d", len(got))
		}
		if got[0].PurchaseLeft() != 3 || got[1].PurchaseLeft() != 0 {
			t.Fatalf("unexpected purchase_left: %d, %d", got[0].PurchaseLeft(), got[1].PurchaseLeft())
		}
	})

	t.Run("get returns the ticket with its restaurant name", func(t *testing.T) {
		ticket, err := svc.Get(context.Background(), "t1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if ticket.RestaurantName != "Trattoria" {
			t.Fatalf("unexpected ticket: %+v", ticket)
		}
	})

	t.Run("get unknown ticket", func(t *testing.T) {
		if _, err := svc.Get(context.Background(), "missing"); err != domain.ErrTicketNotFound {
			t.Fatalf("expected ErrTicketNotFound, got %v", err)
		}
	})
}

type fakeCatalogRepo struct {
	tickets []domain.PublicTicket
}

func (f *fakeCatalogRepo) ListPublicTickets(_ context.Context) ([]domain.PublicTicket, error) {
	return append([]domain.PublicTicket{}, f.tickets...), nil
}

func (f *fakeCatalogRepo) GetPublicTicket(_ context.Context, ticketID string) (*domain.PublicTicket, error) {
	for i := range f.tickets {
		if f.tickets[i].ID == ticketID {
			t := f.tickets[i]
			return &t, nil
		}
	}
	return nil, nil
}
