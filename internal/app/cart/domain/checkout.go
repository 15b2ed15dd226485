package domain

import (
	"github.com/light-bringer/storefront-service/internal/pkg/money"
)

// CheckoutProjection is a read-only view derived from cart state: the
// selected lines and the money figures for the order. Computing it never
// mutates the cart.
type CheckoutProjection struct {
	lines        []*Line
	subtotal     *money.Money
	shippingCost *money.Money
	grandTotal   *money.Money
}

// NewCheckoutProjection projects the cart's selected lines into a
// checkout-ready view with a flat-rate shipping cost for the whole order.
// Returns ErrNoItemsSelected when nothing is selected; checkout must then
// present the redirect-to-cart state instead of a payable total.
func NewCheckoutProjection(cart *Cart, shippingCost *money.Money) (*CheckoutProjection, error) {
	selected := cart.SelectedLines()
	if len(selected) == 0 {
		return nil, ErrNoItemsSelected
	}

	subtotal := cart.SelectedTotal()
	return &CheckoutProjection{
		lines:        selected,
		subtotal:     subtotal,
		shippingCost: shippingCost.Copy(),
		grandTotal:   subtotal.Add(shippingCost),
	}, nil
}

// Lines returns the selected lines included in the order.
func (p *CheckoutProjection) Lines() []*Line {
	return p.lines
}

// Subtotal returns the merchandise subtotal over selected lines.
func (p *CheckoutProjection) Subtotal() *money.Money {
	return p.subtotal.Copy()
}

// ShippingCost returns the flat-rate shipping cost.
func (p *CheckoutProjection) ShippingCost() *money.Money {
	return p.shippingCost.Copy()
}

// GrandTotal returns subtotal plus shipping.
func (p *CheckoutProjection) GrandTotal() *money.Money {
	return p.grandTotal.Copy()
}
