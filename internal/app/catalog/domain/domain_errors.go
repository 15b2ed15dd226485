package domain

import "errors"

// Domain errors as sentinel values
var (
	// Product errors
	ErrProductNotFound = errors.New("product not found")
	ErrEmptyName       = errors.New("product name cannot be empty")
	ErrInvalidPrice    = errors.New("product price must be positive")
	ErrInvalidStyle    = errors.New("unknown product style")

	// Variant errors
	ErrVariantNotFound   = errors.New("variant not found")
	ErrEmptySize         = errors.New("variant size label cannot be empty")
	ErrNegativeStock     = errors.New("variant stock cannot be negative")
	ErrDuplicateVariant  = errors.New("variant id already registered")
	ErrVariantOutOfStock = errors.New("variant is out of stock")
)
