package repo

import (
	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	"github.com/light-bringer/storefront-service/internal/app/order/contracts"
	"github.com/light-bringer/storefront-service/internal/app/order/domain"
	"github.com/light-bringer/storefront-service/internal/models/m_order_event"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
)

// OutboxRepo implements OrderEventRepository for Spanner.
type OutboxRepo struct {
	model *m_order_event.Model
	clock clock.Clock
}

// NewOutboxRepo creates a new OutboxRepo.
func NewOutboxRepo(clk clock.Clock) contracts.OrderEventRepository {
	return &OutboxRepo{
		model: m_order_event.NewModel(),
		clock: clk,
	}
}

// EnrichEvent converts a domain event to an outbox event with metadata.
func (r *OutboxRepo) EnrichEvent(event domain.DomainEvent, payload string) *contracts.OutboxEvent {
	return &contracts.OutboxEvent{
		EventID:     uuid.New().String(),
		EventType:   event.EventType(),
		AggregateID: event.AggregateID(),
		Payload:     payload,
		Status:      m_order_event.StatusPending,
	}
}

// InsertMut creates a mutation for inserting an outbox event.
func (r *OutboxRepo) InsertMut(event *contracts.OutboxEvent) *spanner.Mutation {
	payload := spanner.NullJSON{Value: event.Payload, Valid: event.Payload != ""}

	return r.model.InsertMut(&m_order_event.Data{
		EventID:     event.EventID,
		EventType:   event.EventType,
		AggregateID: event.AggregateID,
		Payload:     payload,
		Status:      event.Status,
		RetryCount:  0,
	})
}

// CompletedMut creates a mutation marking an outbox event as delivered.
func (r *OutboxRepo) CompletedMut(eventID string) *spanner.Mutation {
	return r.model.UpdateMut(eventID, map[string]interface{}{
		m_order_event.Status:      m_order_event.StatusCompleted,
		m_order_event.ProcessedAt: spanner.NullTime{Time: r.clock.Now(), Valid: true},
	})
}
