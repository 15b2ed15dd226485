package repo

import (
	"context"
	"fmt"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

// MemoryCatalog implements CatalogRepository over an in-memory product list.
// It backs local development and tests; the list is fixed after construction,
// so no locking is needed on reads.
type MemoryCatalog struct {
	ordered []*domain.Product
	byID    map[string]*domain.Product
}

// NewMemoryCatalog creates a MemoryCatalog from the given products, which are
// kept in the given order for listing. It rejects catalogs where the same
// variant id appears under two products, since cart operations key off
// variant id alone.
func NewMemoryCatalog(products []*domain.Product) (*MemoryCatalog, error) {
	byID := make(map[string]*domain.Product, len(products))
	seenVariants := make(map[string]string)

	for _, p := range products {
		if _, ok := byID[p.ID()]; ok {
			return nil, fmt.Errorf("duplicate product id %q", p.ID())
		}
		byID[p.ID()] = p

		for _, v := range p.Variants() {
			if owner, ok := seenVariants[v.ID()]; ok {
				return nil, fmt.Errorf("variant id %q shared by products %q and %q: %w",
					v.ID(), owner, p.ID(), domain.ErrDuplicateVariant)
			}
			seenVariants[v.ID()] = p.ID()
		}
	}

	return &MemoryCatalog{
		ordered: append([]*domain.Product(nil), products...),
		byID:    byID,
	}, nil
}

// GetProduct retrieves a product by ID.
func (c *MemoryCatalog) GetProduct(_ context.Context, productID string) (*domain.Product, error) {
	product, ok := c.byID[productID]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

// ListProducts retrieves products in catalog order, honoring the filter.
func (c *MemoryCatalog) ListProducts(_ context.Context, filter *contracts.ListFilter) ([]*domain.Product, error) {
	products := make([]*domain.Product, 0, len(c.ordered))
	for _, p := range c.ordered {
		if filter != nil && filter.Style != "" && string(p.Style()) != filter.Style {
			continue
		}
		if !matchesPriceBounds(p, filter) {
			continue
		}
		products = append(products, p)
	}
	return products, nil
}
