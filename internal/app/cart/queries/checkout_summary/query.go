package checkout_summary

import (
	"context"

	cartdomain "github.com/light-bringer/storefront-service/internal/app/cart/domain"
	catalogdomain "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/money"
	"github.com/light-bringer/storefront-service/internal/sessions"
)

// Request identifies the session to summarize.
type Request struct {
	SessionID string
}

// ItemView is one selected line in the checkout summary.
type ItemView struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id"`
	Name      string `json:"name"`
	Size      string `json:"size"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
}

// Summary is the checkout read model: the selected lines plus derived
// totals, with the flat shipping fee applied.
type Summary struct {
	Items      []ItemView `json:"items"`
	Subtotal   string     `json:"subtotal"`
	Shipping   string     `json:"shipping"`
	GrandTotal string     `json:"grand_total"`
}

// Query handles the checkout summary query.
type Query struct {
	sessions *sessions.Store
	shipping *money.Money
}

// NewQuery creates a new checkout summary query with the configured flat
// shipping cost.
func NewQuery(store *sessions.Store, shipping *money.Money) *Query {
	return &Query{
		sessions: store,
		shipping: shipping,
	}
}

// Execute builds the checkout projection for the session. Returns
// ErrNoItemsSelected when nothing in the cart is selected.
func (q *Query) Execute(_ context.Context, req *Request) (*Summary, error) {
	session := q.sessions.GetOrCreate(req.SessionID)

	var summary *Summary
	err := session.Do(func(cart *cartdomain.Cart, _ *catalogdomain.VariantSelection) error {
		projection, err := cartdomain.NewCheckoutProjection(cart, q.shipping)
		if err != nil {
			return err
		}
		summary = project(projection)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func project(projection *cartdomain.CheckoutProjection) *Summary {
	lines := projection.Lines()
	items := make([]ItemView, 0, len(lines))
	for _, l := range lines {
		items = append(items, ItemView{
			ProductID: l.ProductID(),
			VariantID: l.VariantID(),
			Name:      l.Name(),
			Size:      l.Size(),
			UnitPrice: l.UnitPrice().String(),
			Quantity:  l.Quantity(),
			Subtotal:  l.Subtotal().String(),
		})
	}

	return &Summary{
		Items:      items,
		Subtotal:   projection.Subtotal().String(),
		Shipping:   projection.ShippingCost().String(),
		GrandTotal: projection.GrandTotal().String(),
	}
}
