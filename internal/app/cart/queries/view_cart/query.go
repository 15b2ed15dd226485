package view_cart

import (
	"context"

	cartdomain "github.com/light-bringer/storefront-service/internal/app/cart/domain"
	catalogdomain "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/sessions"
)

// Request identifies the session whose cart to view.
type Request struct {
	SessionID string
}

// LineView is a read-model row for one cart line. Monetary amounts are
// decimal strings with two fraction digits.
type LineView struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id"`
	Name      string `json:"name"`
	Size      string `json:"size"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
	Image     string `json:"image,omitempty"`
	ShopName  string `json:"shop_name,omitempty"`
	Selected  bool   `json:"selected"`
}

// CartView is the full cart read model.
type CartView struct {
	Lines         []LineView `json:"lines"`
	DrawerOpen    bool       `json:"drawer_open"`
	LineCount     int        `json:"line_count"`
	SelectedCount int        `json:"selected_count"`
	Total         string     `json:"total"`
	SelectedTotal string     `json:"selected_total"`
}

// Query handles the view cart query.
type Query struct {
	sessions *sessions.Store
}

// NewQuery creates a new view cart query.
func NewQuery(store *sessions.Store) *Query {
	return &Query{sessions: store}
}

// Execute projects the session's cart into its read model.
func (q *Query) Execute(_ context.Context, req *Request) (*CartView, error) {
	session := q.sessions.GetOrCreate(req.SessionID)

	var view *CartView
	err := session.Do(func(cart *cartdomain.Cart, _ *catalogdomain.VariantSelection) error {
		view = project(cart)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func project(cart *cartdomain.Cart) *CartView {
	lines := cart.Lines()
	views := make([]LineView, 0, len(lines))
	for _, l := range lines {
		views = append(views, LineView{
			ProductID: l.ProductID(),
			VariantID: l.VariantID(),
			Name:      l.Name(),
			Size:      l.Size(),
			UnitPrice: l.UnitPrice().String(),
			Quantity:  l.Quantity(),
			Subtotal:  l.Subtotal().String(),
			Image:     l.Image(),
			ShopName:  l.ShopName(),
			Selected:  l.Selected(),
		})
	}

	return &CartView{
		Lines:         views,
		DrawerOpen:    cart.DrawerOpen(),
		LineCount:     cart.Len(),
		SelectedCount: cart.SelectedCount(),
		Total:         cart.Total().String(),
		SelectedTotal: cart.SelectedTotal().String(),
	}
}
