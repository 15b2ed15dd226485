package m_order_event

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the order_events outbox table.
// Events are written in the same commit as the order they describe, then
// relayed to the message broker.
type Data struct {
	EventID      string             `spanner:"event_id"`
	EventType    string             `spanner:"event_type"`
	AggregateID  string             `spanner:"aggregate_id"`
	Payload      spanner.NullJSON   `spanner:"payload"`
	Status       string             `spanner:"status"`
	CreatedAt    time.Time          `spanner:"created_at"`
	ProcessedAt  spanner.NullTime   `spanner:"processed_at"`
	RetryCount   int64              `spanner:"retry_count"`
	ErrorMessage spanner.NullString `spanner:"error_message"`
}
