package domain

import "errors"

// Domain errors as sentinel values
var (
	ErrEmptyProductID   = errors.New("cart line product id cannot be empty")
	ErrEmptyVariantID   = errors.New("cart line variant id cannot be empty")
	ErrEmptyLineName    = errors.New("cart line name cannot be empty")
	ErrInvalidUnitPrice = errors.New("cart line unit price must not be negative")

	// ErrNoItemsSelected blocks checkout when no cart line is selected.
	// This is a user-facing state, not a data integrity problem.
	ErrNoItemsSelected = errors.New("no items selected for checkout")
)
