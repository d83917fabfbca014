package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/andreejbessmertnyj94/restaurants-test-project/internal/domain"
)

// CatalogReader is the minimal interface needed by the public ticket
// endpoints.
type CatalogReader interface {
	List(ctx context.Context) ([]domain.PublicTicket, error)
	Get(ctx context.Context, ticketID string) (domain.PublicTicket, error)
}

func HandleListPublicTickets(svc CatalogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tickets, err := svc.List(r.Context())
		if err != nil {
			writeDomainError(w, err)
			return
		}

		resp := make([]publicTicketResponse, 0, len(tickets))
		for _, t := range tickets {
			resp = append(resp, newPublicTicketResponse(t))
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func HandleGetPublicTicket(svc CatalogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ticket, err := svc.Get(r.Context(), chi.URLParam(r, "ticketID"))
		if err != nil {
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(newPublicTicketResponse(ticket))
	}
}

type publicTicketResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	MaxPurchaseCount int    `json:"max_purchase_count"`
	PurchaseCount    int    `json:"purchase_count"`
	PurchaseLeft     int    `json:"purchase_left"`
	Restaurant       string `json:"restaurant"`
}

func newPublicTicketResponse(t domain.PublicTicket) publicTicketResponse {
	return publicTicketResponse{
		ID:               t.ID,
		Name:             t.Name,
		MaxPurchaseCount: t.MaxPurchaseCount,
		PurchaseCount:    t.PurchaseCount,
		PurchaseLeft:     t.PurchaseLeft(),
		Restaurant:       t.RestaurantName,
	}
}
