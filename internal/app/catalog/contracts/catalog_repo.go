package contracts

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/money"
)

// ListFilter defines filtering options for browsing the catalog.
type ListFilter struct {
	Style    string
	MinPrice *money.Money
	MaxPrice *money.Money
}

// CatalogRepository supplies product and variant data to the core.
// The catalog is read-only from the storefront's perspective; writes happen
// through out-of-scope admin tooling (see cmd/seed for development data).
//
// Implementations must guarantee variant ids are globally unique, since cart
// operations key off variant id alone.
type CatalogRepository interface {
	// GetProduct retrieves a product with its variants.
	// Returns domain.ErrProductNotFound when absent.
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves products newest-first, honoring the filter.
	ListProducts(ctx context.Context, filter *ListFilter) ([]*domain.Product, error)
}
