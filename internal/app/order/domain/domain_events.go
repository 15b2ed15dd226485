package domain

import (
	"time"

	"github.com/light-bringer/storefront-service/internal/pkg/money"
)

// DomainEvent is the base interface for order domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// OrderPlacedEvent is emitted when a customer places an order.
type OrderPlacedEvent struct {
	OrderID   string
	SessionID string
	ItemCount int
	Total     *money.Money
	PlacedAt  time.Time
}

func (e *OrderPlacedEvent) EventType() string {
	return "order.placed"
}

func (e *OrderPlacedEvent) AggregateID() string {
	return e.OrderID
}
