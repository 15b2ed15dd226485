package remove_item

import (
	"context"

	cartdomain "github.com/light-bringer/storefront-service/internal/app/cart/domain"
	catalogdomain "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/sessions"
)

// Request identifies the cart line to remove.
type Request struct {
	SessionID string
	VariantID string
}

// Interactor handles the remove item use case.
type Interactor struct {
	sessions *sessions.Store
}

// NewInteractor creates a new remove item interactor.
func NewInteractor(store *sessions.Store) *Interactor {
	return &Interactor{sessions: store}
}

// Execute removes the line for the variant, if present. Removing an absent
// variant is a no-op, matching the cart's silent-miss semantics.
func (i *Interactor) Execute(_ context.Context, req *Request) error {
	session := i.sessions.GetOrCreate(req.SessionID)
	return session.Do(func(cart *cartdomain.Cart, _ *catalogdomain.VariantSelection) error {
		cart.RemoveLine(req.VariantID)
		return nil
	})
}
