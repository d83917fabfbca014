package domain

import "time"

// Ticket is the capacity ledger: PurchaseCount counts sold units and may
// never leave [0, MaxPurchaseCount]. Only purchase deltas and
// authenticated create/update touch the counters, and both go through
// CheckCounters before anything is persisted.
type Ticket struct {
	ID               string
	Name             string
	MaxPurchaseCount int
	PurchaseCount    int
	RestaurantID     string
	CreatedAt        time.Time
}

// PurchaseLeft derives the units still available; never stored.
func (t Ticket) PurchaseLeft() int {
	return t.MaxPurchaseCount - t.PurchaseCount
}

// PublicTicket is the catalog view of a ticket, joined with the name of
// the restaurant selling it.
type PublicTicket struct {
	Ticket
	RestaurantName string
}

// CheckCounters enforces the ledger invariant on a counter pair.
func CheckCounters(purchaseCount, maxPurchaseCount int) error {
	if maxPurchaseCount < 0 || purchaseCount < 0 || purchaseCount > maxPurchaseCount {
		return ErrCounterInvariant
	}
	return nil
}
