package domain

import "time"

// Restaurant belongs to exactly one owner; OwnerID never changes after
// creation. Deleting a restaurant cascades to its tickets, while the
// owning user row is protected against deletion as long as restaurants
// reference it.
type Restaurant struct {
	ID        string
	Name      string
	OwnerID   string
	CreatedAt time.Time
}
