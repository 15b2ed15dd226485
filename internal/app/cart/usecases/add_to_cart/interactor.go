package add_to_cart

import (
	"context"
	"fmt"

	cartdomain "github.com/light-bringer/storefront-service/internal/app/cart/domain"
	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	catalogdomain "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/sessions"
)

// Request contains the data needed to add a variant to a cart.
type Request struct {
	SessionID string
	ProductID string
	VariantID string
	Quantity  int
}

// Interactor handles the add to cart use case.
type Interactor struct {
	catalog  contracts.CatalogRepository
	sessions *sessions.Store
}

// NewInteractor creates a new add to cart interactor.
func NewInteractor(catalog contracts.CatalogRepository, store *sessions.Store) *Interactor {
	return &Interactor{
		catalog:  catalog,
		sessions: store,
	}
}

// Execute resolves the variant against the catalog and adds it to the
// session's cart. The line carries denormalized product details and the
// variant's effective unit price captured at add time. Sold-out variants are
// rejected here; once a line exists, later stock changes do not affect it.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	product, err := i.catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		return err
	}

	variant, err := product.Variant(req.VariantID)
	if err != nil {
		return err
	}
	if !variant.Selectable() {
		return catalogdomain.ErrVariantOutOfStock
	}

	var image string
	if images := product.Images(); len(images) > 0 {
		image = images[0]
	}

	input := cartdomain.LineInput{
		ProductID: product.ID(),
		VariantID: variant.ID(),
		Name:      product.Name(),
		Size:      variant.Size(),
		UnitPrice: variant.UnitPrice(product.BasePrice()),
		Quantity:  req.Quantity,
		Image:     image,
		ShopName:  product.ShopName(),
	}

	session := i.sessions.GetOrCreate(req.SessionID)
	if err := session.Do(func(cart *cartdomain.Cart, _ *catalogdomain.VariantSelection) error {
		return cart.AddLine(input)
	}); err != nil {
		return fmt.Errorf("failed to add line: %w", err)
	}

	return nil
}
