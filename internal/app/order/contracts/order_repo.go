package contracts

import (
	"cloud.google.com/go/spanner"

	"github.com/light-bringer/storefront-service/internal/app/order/domain"
)

// OrderRepository persists orders. It follows the mutation-plan pattern:
// repositories return mutations and the use case commits them atomically,
// so the order header, its items, and the outbox event land in one commit.
type OrderRepository interface {
	// InsertMuts creates mutations for the order header and all of its items.
	InsertMuts(order *domain.Order) ([]*spanner.Mutation, error)
}

// OutboxEvent is an enriched domain event ready for outbox persistence.
type OutboxEvent struct {
	EventID     string
	EventType   string
	AggregateID string
	Payload     string
	Status      string
}

// OrderEventRepository persists order domain events to the outbox table.
type OrderEventRepository interface {
	// EnrichEvent converts a domain event to an outbox event with metadata.
	EnrichEvent(event domain.DomainEvent, payload string) *OutboxEvent

	// InsertMut creates a mutation for inserting an outbox event.
	InsertMut(event *OutboxEvent) *spanner.Mutation

	// CompletedMut creates a mutation marking an outbox event as delivered.
	CompletedMut(eventID string) *spanner.Mutation
}
