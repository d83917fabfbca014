package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/andreejbessmertnyj94/restaurants-test-project/internal/domain"
)

// TicketPurchaser is the minimal interface needed by the buy endpoint.
type TicketPurchaser interface {
	Purchase(ctx context.Context, ticketID string, delta int) (domain.PublicTicket, error)
}

// HandleBuyTicket applies a signed delta to a ticket's sold count.
// The delta must be a pure JSON integer: floats, numeric strings and a
// missing field are all rejected before the datastore is touched.
func HandleBuyTicket(svc TicketPurchaser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req buyRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		delta, err := req.delta()
		if err != nil {
			writeDomainError(w, err)
			return
		}

		ticket, err := svc.Purchase(r.Context(), chi.URLParam(r, "ticketID"), delta)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(newPublicTicketResponse(ticket))
	}
}

type buyRequest struct {
	TicketsToBuy json.RawMessage `json:"tickets_to_buy"`
}

// delta extracts the signed purchase amount, accepting only whole-number
// JSON literals. The raw token is inspected so that quoted strings,
// fractional and exponent forms are all rejected.
func (r buyRequest) delta() (int, error) {
	raw := bytes.TrimSpace(r.TicketsToBuy)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, domain.ErrMissingDelta
	}
	if raw[0] == '"' {
		return 0, domain.ErrInvalidDelta
	}
	literal := string(raw)
	if strings.ContainsAny(literal, ".eE") {
		return 0, domain.ErrInvalidDelta
	}
	delta, err := strconv.Atoi(literal)
	if err != nil {
		return 0, domain.ErrInvalidDelta
	}
	return delta, nil
}
