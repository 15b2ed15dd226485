package update_quantity

import (
	"context"

	cartdomain "github.com/light-bringer/storefront-service/internal/app/cart/domain"
	catalogdomain "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/sessions"
)

// Request contains a signed quantity delta for a cart line.
type Request struct {
	SessionID string
	VariantID string
	Delta     int
}

// Interactor handles the update quantity use case.
type Interactor struct {
	sessions *sessions.Store
}

// NewInteractor creates a new update quantity interactor.
func NewInteractor(store *sessions.Store) *Interactor {
	return &Interactor{sessions: store}
}

// Execute applies the delta to the line's quantity. The cart floors the
// result at one; removal is an explicit separate operation.
func (i *Interactor) Execute(_ context.Context, req *Request) error {
	session := i.sessions.GetOrCreate(req.SessionID)
	return session.Do(func(cart *cartdomain.Cart, _ *catalogdomain.VariantSelection) error {
		cart.UpdateQuantity(req.VariantID, req.Delta)
		return nil
	})
}
