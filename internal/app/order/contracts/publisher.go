package contracts

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/pkg/committer"
)

// Committer applies a commit plan atomically. Satisfied by
// committer.Committer; declared here so use cases can be tested without a
// Spanner client.
type Committer interface {
	Apply(ctx context.Context, plan *committer.CommitPlan) error
}

// EventPublisher delivers serialized order events to the message broker.
// Publishing happens after the owning transaction commits; the outbox row
// keeps the event replayable if delivery fails.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload []byte) error
}
