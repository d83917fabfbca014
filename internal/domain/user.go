package domain

import "time"

// User is an authenticated principal that owns restaurants.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
