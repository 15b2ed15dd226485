package domain

import (
	"time"

	"github.com/google/uuid"

	cartdomain "github.com/light-bringer/storefront-service/internal/app/cart/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/money"
)

// Status represents the lifecycle state of an order.
type Status string

const (
	StatusPending Status = "PENDING"
	StatusPaid    Status = "PAID"
	StatusShipped Status = "SHIPPED"
)

// Item is a single purchased line, with the unit price captured at purchase
// time so later catalog changes never alter placed orders.
type Item struct {
	id        string
	productID string
	variantID string
	name      string
	size      string
	quantity  int
	unitPrice *money.Money
}

func (i *Item) ID() string              { return i.id }
func (i *Item) ProductID() string       { return i.productID }
func (i *Item) VariantID() string       { return i.variantID }
func (i *Item) Name() string            { return i.name }
func (i *Item) Size() string            { return i.size }
func (i *Item) Quantity() int           { return i.quantity }
func (i *Item) UnitPrice() *money.Money { return i.unitPrice.Copy() }

// Order is the order aggregate. It is created from a checkout projection and
// never mutated by the storefront after placement; fulfillment transitions
// happen through out-of-scope admin tooling.
type Order struct {
	id        string
	sessionID string
	status    Status
	items     []*Item
	subtotal  *money.Money
	shipping  *money.Money
	total     *money.Money
	createdAt time.Time
	events    []DomainEvent
}

// PlaceOrder creates an Order from the selected cart lines captured in the
// projection. The projection's totals carry over unchanged.
func PlaceOrder(sessionID string, projection *cartdomain.CheckoutProjection, now time.Time) (*Order, error) {
	if sessionID == "" {
		return nil, ErrEmptySession
	}

	lines := projection.Lines()
	if len(lines) == 0 {
		return nil, ErrNoOrderItems
	}

	items := make([]*Item, 0, len(lines))
	for _, line := range lines {
		items = append(items, &Item{
			id:        uuid.New().String(),
			productID: line.ProductID(),
			variantID: line.VariantID(),
			name:      line.Name(),
			size:      line.Size(),
			quantity:  line.Quantity(),
			unitPrice: line.UnitPrice(),
		})
	}

	order := &Order{
		id:        uuid.New().String(),
		sessionID: sessionID,
		status:    StatusPending,
		items:     items,
		subtotal:  projection.Subtotal(),
		shipping:  projection.ShippingCost(),
		total:     projection.GrandTotal(),
		createdAt: now,
	}

	order.recordEvent(&OrderPlacedEvent{
		OrderID:   order.id,
		SessionID: sessionID,
		ItemCount: len(items),
		Total:     order.total.Copy(),
		PlacedAt:  now,
	})

	return order, nil
}

func (o *Order) ID() string        { return o.id }
func (o *Order) SessionID() string { return o.sessionID }
func (o *Order) Status() Status    { return o.status }

func (o *Order) Items() []*Item {
	return append([]*Item(nil), o.items...)
}

func (o *Order) Subtotal() *money.Money     { return o.subtotal.Copy() }
func (o *Order) ShippingCost() *money.Money { return o.shipping.Copy() }
func (o *Order) Total() *money.Money        { return o.total.Copy() }
func (o *Order) CreatedAt() time.Time       { return o.createdAt }

func (o *Order) recordEvent(event DomainEvent) {
	o.events = append(o.events, event)
}

// Events returns the recorded domain events.
func (o *Order) Events() []DomainEvent {
	return o.events
}

// ClearEvents clears the recorded events, typically after they are persisted.
func (o *Order) ClearEvents() {
	o.events = nil
}
