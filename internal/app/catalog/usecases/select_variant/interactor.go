package select_variant

import (
	"context"

	cartdomain "github.com/light-bringer/storefront-service/internal/app/cart/domain"
	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	catalogdomain "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/sessions"
)

// Request activates a variant on a product detail view.
type Request struct {
	SessionID string
	ProductID string
	VariantID string
}

// Result reports the selection state after the request.
type Result struct {
	// Applied is false when the variant was sold out and the previous
	// selection was kept.
	Applied           bool
	SelectedVariantID string
	// StockNotice is the urgency message for the active variant, empty when
	// stock is comfortable.
	StockNotice string
}

// Interactor handles variant selection on product pages.
type Interactor struct {
	catalog  contracts.CatalogRepository
	sessions *sessions.Store
}

// NewInteractor creates a new select variant interactor.
func NewInteractor(catalog contracts.CatalogRepository, store *sessions.Store) *Interactor {
	return &Interactor{
		catalog:  catalog,
		sessions: store,
	}
}

// Execute records the viewed product and tries to activate the variant.
// Sold-out variants are not an error; the response just reports that the
// selection did not change.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	product, err := i.catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	variant, err := product.Variant(req.VariantID)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	session := i.sessions.GetOrCreate(req.SessionID)
	err = session.Do(func(_ *cartdomain.Cart, selection *catalogdomain.VariantSelection) error {
		selection.ViewProduct(product.ID())
		result.Applied = selection.Select(variant)
		if id, ok := selection.SelectedVariantID(); ok {
			result.SelectedVariantID = id
			if active, err := product.Variant(id); err == nil {
				if notice, show := active.StockNotice(); show {
					result.StockNotice = notice
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
