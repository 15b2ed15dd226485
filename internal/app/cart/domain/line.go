package domain

import (
	"github.com/light-bringer/storefront-service/internal/pkg/money"
)

// LineInput is the fully-formed add-to-cart payload, excluding the selection
// flag which the cart controls. Name, size, price, image, and shop name are
// denormalized copies captured at add time so the cart renders without
// re-querying the catalog.
type LineInput struct {
	ProductID string
	VariantID string
	Name      string
	Size      string
	UnitPrice *money.Money
	Quantity  int
	Image     string
	ShopName  string
}

// Line is one entry in the cart, uniquely keyed by (product id, variant id).
type Line struct {
	productID string
	variantID string
	name      string
	size      string
	unitPrice *money.Money
	quantity  int
	image     string
	shopName  string
	selected  bool
}

// newLine builds a Line from an input payload, applying defaults
// deterministically: quantity is floored at 1 and selected starts true.
func newLine(in LineInput) (*Line, error) {
	if in.ProductID == "" {
		return nil, ErrEmptyProductID
	}
	if in.VariantID == "" {
		return nil, ErrEmptyVariantID
	}
	if in.Name == "" {
		return nil, ErrEmptyLineName
	}
	if in.UnitPrice == nil || in.UnitPrice.IsNegative() {
		return nil, ErrInvalidUnitPrice
	}

	qty := in.Quantity
	if qty < 1 {
		qty = 1
	}

	return &Line{
		productID: in.ProductID,
		variantID: in.VariantID,
		name:      in.Name,
		size:      in.Size,
		unitPrice: in.UnitPrice.Copy(),
		quantity:  qty,
		image:     in.Image,
		shopName:  in.ShopName,
		selected:  true,
	}, nil
}

// Getters
func (l *Line) ProductID() string       { return l.productID }
func (l *Line) VariantID() string       { return l.variantID }
func (l *Line) Name() string            { return l.name }
func (l *Line) Size() string            { return l.size }
func (l *Line) UnitPrice() *money.Money { return l.unitPrice.Copy() }
func (l *Line) Quantity() int           { return l.quantity }
func (l *Line) Image() string           { return l.image }
func (l *Line) ShopName() string        { return l.shopName }
func (l *Line) Selected() bool          { return l.selected }

// Subtotal returns unit price times quantity.
func (l *Line) Subtotal() *money.Money {
	return l.unitPrice.MultiplyByInt(int64(l.quantity))
}

// copy returns a detached copy safe to hand to readers.
func (l *Line) copy() *Line {
	dup := *l
	dup.unitPrice = l.unitPrice.Copy()
	return &dup
}
