package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/andreejbessmertnyj94/restaurants-test-project/internal/app"
	"github.com/andreejbessmertnyj94/restaurants-test-project/internal/domain"
)

// TicketManager is the minimal interface needed by the owner-scoped
// ticket endpoints.
type TicketManager interface {
	Create(ctx context.Context, in app.CreateTicketInput) (domain.Ticket, error)
	List(ctx context.Context, ownerID, restaurantID string) ([]domain.Ticket, error)
	Get(ctx context.Context, ownerID, restaurantID, ticketID string) (domain.Ticket, error)
	Update(ctx context.Context, in app.UpdateTicketInput) (domain.Ticket, error)
	Delete(ctx context.Context, ownerID, restaurantID, ticketID string) error
}

func HandleListTickets(svc TicketManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, domain.ErrUnauthorized.Error())
			return
		}

		tickets, err := svc.List(r.Context(), user.ID, chi.URLParam(r, "restaurantID"))
		if err != nil {
			writeDomainError(w, err)
			return
		}

		resp := make([]ticketResponse, 0, len(tickets))
		for _, t := range tickets {
			resp = append(resp, newTicketResponse(t))
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func HandleCreateTicket(svc TicketManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, domain.ErrUnauthorized.Error())
			return
		}

		var req ticketRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		ticket, err := svc.Create(r.Context(), app.CreateTicketInput{
			OwnerID:          user.ID,
			RestaurantID:     chi.URLParam(r, "restaurantID"),
			Name:             req.Name,
			MaxPurchaseCount: req.MaxPurchaseCount,
			PurchaseCount:    req.PurchaseCount,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(newTicketResponse(ticket))
	}
}

func HandleGetTicket(svc TicketManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, domain.ErrUnauthorized.Error())
			return
		}

		ticket, err := svc.Get(r.Context(), user.ID, chi.URLParam(r, "restaurantID"), chi.URLParam(r, "ticketID"))
		if err != nil {
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(newTicketResponse(ticket))
	}
}

func HandleUpdateTicket(svc TicketManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, domain.ErrUnauthorized.Error())
			return
		}

		var req ticketRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		ticket, err := svc.Update(r.Context(), app.UpdateTicketInput{
			OwnerID:          user.ID,
			RestaurantID:     chi.URLParam(r, "restaurantID"),
			TicketID:         chi.URLParam(r, "ticketID"),
			Name:             req.Name,
			MaxPurchaseCount: req.MaxPurchaseCount,
			PurchaseCount:    req.PurchaseCount,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(newTicketResponse(ticket))
	}
}

func HandleDeleteTicket(svc TicketManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, domain.ErrUnauthorized.Error())
			return
		}

		err := svc.Delete(r.Context(), user.ID, chi.URLParam(r, "restaurantID"), chi.URLParam(r, "ticketID"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type ticketRequest struct {
	Name             string `json:"name"`
	MaxPurchaseCount int    `json:"max_purchase_count"`
	PurchaseCount    int    `json:"purchase_count"`
}

type ticketResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	MaxPurchaseCount int    `json:"max_purchase_count"`
	PurchaseCount    int    `json:"purchase_count"`
}

func newTicketResponse(t domain.Ticket) ticketResponse {
	return ticketResponse{
		ID:               t.ID,
		Name:             t.Name,
		MaxPurchaseCount: t.MaxPurchaseCount,
		PurchaseCount:    t.PurchaseCount,
	}
}
