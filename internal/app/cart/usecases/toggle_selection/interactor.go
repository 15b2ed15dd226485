package toggle_selection

import (
	"context"

	cartdomain "github.com/light-bringer/storefront-service/internal/app/cart/domain"
	catalogdomain "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/sessions"
)

// Request toggles one line's selection flag.
type Request struct {
	SessionID string
	VariantID string
}

// AllRequest sets every line's selection flag at once.
type AllRequest struct {
	SessionID string
	Selected  bool
}

// Interactor handles checkout selection changes.
type Interactor struct {
	sessions *sessions.Store
}

// NewInteractor creates a new toggle selection interactor.
func NewInteractor(store *sessions.Store) *Interactor {
	return &Interactor{sessions: store}
}

// Execute flips the selection flag on the matching line.
func (i *Interactor) Execute(_ context.Context, req *Request) error {
	session := i.sessions.GetOrCreate(req.SessionID)
	return session.Do(func(cart *cartdomain.Cart, _ *catalogdomain.VariantSelection) error {
		cart.ToggleSelection(req.VariantID)
		return nil
	})
}

// ExecuteAll sets the selection flag on every line, the "select all" control.
func (i *Interactor) ExecuteAll(_ context.Context, req *AllRequest) error {
	session := i.sessions.GetOrCreate(req.SessionID)
	return session.Do(func(cart *cartdomain.Cart, _ *catalogdomain.VariantSelection) error {
		cart.SetAllSelected(req.Selected)
		return nil
	})
}
