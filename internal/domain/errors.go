package domain

import "errors"

var (
	ErrCredentialsRequired = errors.New("username and password are required")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrUnauthorized        = errors.New("missing or invalid token")
	ErrNameRequired        = errors.New("name is required")
	ErrRestaurantNotFound  = errors.New("restaurant not found")
	ErrRestaurantForbidden = errors.New("restaurant does not belong to caller")
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrCounterInvariant    = errors.New("purchase_count must be between 0 and max_purchase_count")
	ErrCapacityExceeded    = errors.New("not enough tickets left")
	ErrInvalidReturn       = errors.New("cannot return more tickets than sold")
	ErrMissingDelta        = errors.New("tickets_to_buy is required")
	ErrInvalidDelta        = errors.New("tickets_to_buy must be an integer")
	ErrTransient           = errors.New("transient storage conflict")
	ErrContention          = errors.New("ticket is under heavy contention, try again")
)
