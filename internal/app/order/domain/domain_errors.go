package domain

import "errors"

var (
	// ErrEmptySession indicates an order was placed without a session id.
	ErrEmptySession = errors.New("session id cannot be empty")
	// ErrNoOrderItems indicates an order would contain no items.
	ErrNoOrderItems = errors.New("order must contain at least one item")
	// ErrOrderNotFound indicates the requested order does not exist.
	ErrOrderNotFound = errors.New("order not found")
)
