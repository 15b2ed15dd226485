// Package domain implements the cart engine: an ordered collection of cart
// lines with per-line selection flags, a drawer-open flag, and the derived
// totals that gate checkout.
//
// Operations targeting a variant id absent from the cart are silent no-ops by
// design: the only caller is trusted UI code, and a missing id indicates a
// harmless race between render and click.
package domain

import (
	"github.com/light-bringer/storefront-service/internal/pkg/money"
)

// Observer receives cart events after each state change, decoupling the
// engine from any particular display technology.
type Observer func(DomainEvent)

// Cart owns the cart line collection and the drawer flag for one session.
// Created empty at session start, cleared on successful order placement,
// discarded when the session ends. Not safe for concurrent use; the session
// store serializes access.
type Cart struct {
	lines      []*Line
	drawerOpen bool
	observers  []Observer
}

// New creates an empty cart with the drawer closed.
func New() *Cart {
	return &Cart{}
}

// Subscribe registers an observer for subsequent cart events.
func (c *Cart) Subscribe(o Observer) {
	c.observers = append(c.observers, o)
}

func (c *Cart) notify(event DomainEvent) {
	for _, o := range c.observers {
		o(event)
	}
}

// AddLine adds an item to the cart. When a line with the same
// (product id, variant id) pair already exists, its quantity is incremented
// by exactly one; the input quantity is ignored and the selection flag is
// left untouched. Otherwise a new selected line is appended. Either way the
// drawer opens.
func (c *Cart) AddLine(in LineInput) error {
	for _, l := range c.lines {
		if l.productID == in.ProductID && l.variantID == in.VariantID {
			l.quantity++
			c.drawerOpen = true
			c.notify(&LineAddedEvent{
				ProductID: l.productID,
				VariantID: l.variantID,
				Quantity:  l.quantity,
				Merged:    true,
			})
			return nil
		}
	}

	line, err := newLine(in)
	if err != nil {
		return err
	}
	c.lines = append(c.lines, line)
	c.drawerOpen = true
	c.notify(&LineAddedEvent{
		ProductID: line.productID,
		VariantID: line.variantID,
		Quantity:  line.quantity,
	})
	return nil
}

// RemoveLine deletes the line whose variant id matches. No-op when absent.
func (c *Cart) RemoveLine(variantID string) {
	for i, l := range c.lines {
		if l.variantID == variantID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.notify(&LineRemovedEvent{VariantID: variantID})
			return
		}
	}
}

// ToggleSelection flips the selection flag on the matching line.
// No-op when absent.
func (c *Cart) ToggleSelection(variantID string) {
	for _, l := range c.lines {
		if l.variantID == variantID {
			l.selected = !l.selected
			c.notify(&SelectionToggledEvent{VariantID: variantID, Selected: l.selected})
			return
		}
	}
}

// SetAllSelected sets every line's selection flag to the given value.
func (c *Cart) SetAllSelected(selected bool) {
	for _, l := range c.lines {
		l.selected = selected
	}
	c.notify(&AllSelectionSetEvent{Selected: selected})
}

// UpdateQuantity applies a delta to the matching line's quantity, clamped to
// a floor of 1. There is deliberately no ceiling tied to live stock: stock
// enforcement is a server-side order-time concern. No-op when absent.
func (c *Cart) UpdateQuantity(variantID string, delta int) {
	for _, l := range c.lines {
		if l.variantID == variantID {
			qty := l.quantity + delta
			if qty < 1 {
				qty = 1
			}
			l.quantity = qty
			c.notify(&QuantityUpdatedEvent{VariantID: variantID, Quantity: qty})
			return
		}
	}
}

// Clear removes all lines. The drawer flag is left as it was; this runs
// after successful order placement while the confirmation is still showing.
func (c *Cart) Clear() {
	c.lines = nil
	c.notify(&ClearedEvent{})
}

// ToggleDrawer flips the drawer-open flag.
func (c *Cart) ToggleDrawer() {
	c.drawerOpen = !c.drawerOpen
	c.notify(&DrawerToggledEvent{Open: c.drawerOpen})
}

// DrawerOpen reports whether the cart panel is presented.
func (c *Cart) DrawerOpen() bool {
	return c.drawerOpen
}

// Len returns the number of lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Lines returns detached copies of all lines in insertion order.
func (c *Cart) Lines() []*Line {
	out := make([]*Line, len(c.lines))
	for i, l := range c.lines {
		out[i] = l.copy()
	}
	return out
}

// SelectedLines returns detached copies of the selected lines in order.
func (c *Cart) SelectedLines() []*Line {
	out := make([]*Line, 0, len(c.lines))
	for _, l := range c.lines {
		if l.selected {
			out = append(out, l.copy())
		}
	}
	return out
}

// SelectedCount returns how many lines are selected.
func (c *Cart) SelectedCount() int {
	n := 0
	for _, l := range c.lines {
		if l.selected {
			n++
		}
	}
	return n
}

// Total sums unit price times quantity over all lines, selected or not.
func (c *Cart) Total() *money.Money {
	total := money.Zero()
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// SelectedTotal sums unit price times quantity over selected lines only.
// This is the authoritative figure gating and driving checkout.
func (c *Cart) SelectedTotal() *money.Money {
	total := money.Zero()
	for _, l := range c.lines {
		if l.selected {
			total = total.Add(l.Subtotal())
		}
	}
	return total
}
