package toggle_drawer

import (
	"context"

	cartdomain "github.com/light-bringer/storefront-service/internal/app/cart/domain"
	catalogdomain "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/sessions"
)

// Request identifies the session whose drawer should flip.
type Request struct {
	SessionID string
}

// Interactor handles the cart drawer toggle.
type Interactor struct {
	sessions *sessions.Store
}

// NewInteractor creates a new toggle drawer interactor.
func NewInteractor(store *sessions.Store) *Interactor {
	return &Interactor{sessions: store}
}

// Execute flips the drawer and reports the resulting state.
func (i *Interactor) Execute(_ context.Context, req *Request) (bool, error) {
	session := i.sessions.GetOrCreate(req.SessionID)
	var open bool
	err := session.Do(func(cart *cartdomain.Cart, _ *catalogdomain.VariantSelection) error {
		cart.ToggleDrawer()
		open = cart.DrawerOpen()
		return nil
	})
	return open, err
}
