package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/andreejbessmertnyj94/restaurants-test-project/internal/app"
	"github.com/andreejbessmertnyj94/restaurants-test-project/internal/domain"
)

func ticketRouter(svc TicketManager) http.Handler {
	return NewRouter(RouterConfig{
		Authn:   &stubAuthenticator{user: domain.User{ID: "owner-1", Username: "alice"}},
		Tickets: svc,
	})
}

func TestTicketEndpoints(t *testing.T) {
	t.Parallel()

	t.Run("requires authentication", func(t *testing.T) {
		t.Parallel()
		router := ticketRouter(&stubTicketService{})

		req := httptest.NewRequest(http.MethodGet, "/restaurants/r1/tickets/", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("create under owned restaurant", func(t *testing.T) {
		t.Parallel()
		svc := &stubTicketService{}
		router := ticketRouter(svc)

		body := bytes.NewBufferString(`{"name":"Dinner","max_purchase_count":10,"purchase_count":0}`)
		req := httptest.NewRequest(http.MethodPost, "/restaurants/r1/tickets/", body)
		req.Header.Set("Authorization", "Bearer tok")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (body %s)", rec.Code, rec.Body.String())
		}
		in := svc.lastCreate
		if in.OwnerID != "owner-1" || in.RestaurantID != "r1" || in.MaxPurchaseCount != 10 {
			t.Fatalf("unexpected create input: %+v", in)
		}
	})

	t.Run("create under foreign restaurant is 403", func(t *testing.T) {
		t.Parallel()
		router := ticketRouter(&stubTicketService{err: domain.ErrRestaurantForbidden})

		body := bytes.NewBufferString(`{"name":"Dinner","max_purchase_count":10}`)
		req := httptest.NewRequest(http.MethodPost, "/restaurants/r9/tickets/", body)
		req.Header.Set("Authorization", "Bearer tok")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})

	t.Run("list under foreign restaurant is 404", func(t *testing.T) {
		t.Parallel()
		router := ticketRouter(&stubTicketService{err: domain.ErrRestaurantNotFound})

		req := httptest.NewRequest(http.MethodGet, "/restaurants/r9/tickets/", nil)
		req.Header.Set("Authorization", "Bearer tok")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("create with invariant-violating counters is 400", func(t *testing.T) {
		t.Parallel()
		router := ticketRouter(&stubTicketService{err: domain.ErrCounterInvariant})

		body := bytes.NewBufferString(`{"name":"Dinner","max_purchase_count":0,"purchase_count":1}`)
		req := httptest.NewRequest(http.MethodPost, "/restaurants/r1/tickets/", body)
		req.Header.Set("Authorization", "Bearer tok")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"code":"counter_invariant"`) {
			t.Fatalf("unexpected body: %s", rec.Body.String())
		}
	})

	t.Run("create with fractional counter is 400", func(t *testing.T) {
		t.Parallel()
		svc := &stubTicketService{}
		router := ticketRouter(svc)

		body := bytes.NewBufferString(`{"name":"Dinner","max_purchase_count":1.5}`)
		req := httptest.NewRequest(http.MethodPost, "/restaurants/r1/tickets/", body)
		req.Header.Set("Authorization", "Bearer tok")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if svc.calls != 0 {
			t.Fatalf("expected no service call, got %d", svc.calls)
		}
	})

	t.Run("get, update, delete round trip", func(t *testing.T) {
		t.Parallel()
		svc := &stubTicketService{
			ticket: domain.Ticket{ID: "t1", Name: "Dinner", MaxPurchaseCount: 10, PurchaseCount: 2, RestaurantID: "r1"},
		}
		router := ticketRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/restaurants/r1/tickets/t1/", nil)
		req.Header.Set("Authorization", "Bearer tok")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("get: expected 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"purchase_count":2`) {
			t.Fatalf("unexpected body: %s", rec.Body.String())
		}

		body := bytes.NewBufferString(`{"name":"Dinner","max_purchase_count":12,"purchase_count":2}`)
		req = httptest.NewRequest(http.MethodPut, "/restaurants/r1/tickets/t1/", body)
		req.Header.Set("Authorization", "Bearer tok")
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("update: expected 200, got %d", rec.Code)
		}
		if svc.lastUpdate.TicketID != "t1" || svc.lastUpdate.MaxPurchaseCount != 12 {
			t.Fatalf("unexpected update input: %+v", svc.lastUpdate)
		}

		req = httptest.NewRequest(http.MethodDelete, "/restaurants/r1/tickets/t1/", nil)
		req.Header.Set("Authorization", "Bearer tok")
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("delete: expected 204, got %d", rec.Code)
		}
	})
}

type stubTicketService struct {
	ticket     domain.Ticket
	err        error
	calls      int
	lastCreate app.CreateTicketInput
	lastUpdate app.UpdateTicketInput
}

func (s *stubTicketService) Create(_ context.Context, in app.CreateTicketInput) (domain.Ticket, error) {
	s.calls++
	s.lastCreate = in
	if s.err != nil {
		return domain.Ticket{}, s.err
	}
	return domain.Ticket{ID: "t1", Name: in.Name, MaxPurchaseCount: in.MaxPurchaseCount, PurchaseCount: in.PurchaseCount, RestaurantID: in.RestaurantID}, nil
}

func (s *stubTicketService) List(_ context.Context, ownerID, restaurantID string) ([]domain.Ticket, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return []domain.Ticket{s.ticket}, nil
}

func (s *stubTicketService) Get(_ context.Context, ownerID, restaurantID, ticketID string) (domain.Ticket, error) {
	s.calls++
	if s.err != nil {
		return domain.Ticket{}, s.err
	}
	return s.ticket, nil
}

func (s *stubTicketService) Update(_ context.Context, in app.UpdateTicketInput) (domain.Ticket, error) {
	s.calls++
	s.lastUpdate = in
	if s.err != nil {
		return domain.Ticket{}, s.err
	}
	return s.ticket, nil
}

func (s *stubTicketService) Delete(_ context.Context, ownerID, restaurantID, ticketID string) error {
	s.calls++
	return s.err
}
