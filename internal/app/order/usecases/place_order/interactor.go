package place_order

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	cartdomain "github.com/light-bringer/storefront-service/internal/app/cart/domain"
	catalogdomain "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/app/order/contracts"
	"github.com/light-bringer/storefront-service/internal/app/order/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
	"github.com/light-bringer/storefront-service/internal/pkg/money"
	"github.com/light-bringer/storefront-service/internal/sessions"
)

// Request identifies the session placing an order.
type Request struct {
	SessionID string
}

// Result reports the placed order.
type Result struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
	Total   string `json:"total"`
}

// Interactor handles the place order use case.
type Interactor struct {
	sessions        *sessions.Store
	orderRepo       contracts.OrderRepository
	outboxRepo      contracts.OrderEventRepository
	committer       contracts.Committer
	publisher       contracts.EventPublisher
	clock           clock.Clock
	shipping        *money.Money
	processingDelay time.Duration
	logger          *zap.Logger
}

// NewInteractor creates a new place order interactor. The processing delay
// simulates payment authorization latency and may be zero.
func NewInteractor(
	store *sessions.Store,
	orderRepo contracts.OrderRepository,
	outboxRepo contracts.OrderEventRepository,
	cmt contracts.Committer,
	publisher contracts.EventPublisher,
	clk clock.Clock,
	shipping *money.Money,
	processingDelay time.Duration,
	logger *zap.Logger,
) *Interactor {
	return &Interactor{
		sessions:        store,
		orderRepo:       orderRepo,
		outboxRepo:      outboxRepo,
		committer:       cmt,
		publisher:       publisher,
		clock:           clk,
		shipping:        shipping,
		processingDelay: processingDelay,
		logger:          logger,
	}
}

// Execute turns the session's selected cart lines into a persisted order.
//
// The order row, its items, and the outbox event commit in one plan; the
// cart is cleared only after that commit succeeds, so a storage failure
// leaves the cart intact. Broker publishing happens after commit and its
// failure does not fail the order: the outbox row stays pending for replay.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	if i.processingDelay > 0 {
		select {
		case <-time.After(i.processingDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	var (
		result        *Result
		pendingEvents []*contracts.OutboxEvent
	)

	session := i.sessions.GetOrCreate(req.SessionID)
	err := session.Do(func(cart *cartdomain.Cart, _ *catalogdomain.VariantSelection) error {
		projection, err := cartdomain.NewCheckoutProjection(cart, i.shipping)
		if err != nil {
			return err
		}

		order, err := domain.PlaceOrder(session.ID(), projection, i.clock.Now())
		if err != nil {
			return err
		}

		plan := committer.NewPlan()
		orderMuts, err := i.orderRepo.InsertMuts(order)
		if err != nil {
			return fmt.Errorf("failed to build order mutations: %w", err)
		}
		plan.AddMultiple(orderMuts)

		for _, event := range order.Events() {
			payload, err := json.Marshal(event)
			if err != nil {
				return fmt.Errorf("failed to serialize event: %w", err)
			}
			outboxEvent := i.outboxRepo.EnrichEvent(event, string(payload))
			plan.Add(i.outboxRepo.InsertMut(outboxEvent))
			pendingEvents = append(pendingEvents, outboxEvent)
		}

		if err := i.committer.Apply(ctx, plan); err != nil {
			return fmt.Errorf("failed to commit order: %w", err)
		}
		order.ClearEvents()

		cart.Clear()

		result = &Result{
			OrderID: order.ID(),
			Status:  string(order.Status()),
			Total:   order.Total().String(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	i.publishEvents(ctx, pendingEvents)

	return result, nil
}

// publishEvents delivers committed outbox events to the broker, marking each
// delivered row completed. Failures are logged and the rows stay pending.
func (i *Interactor) publishEvents(ctx context.Context, events []*contracts.OutboxEvent) {
	for _, event := range events {
		if err := i.publisher.Publish(ctx, event.EventType, []byte(event.Payload)); err != nil {
			i.logger.Warn("event publish failed, leaving outbox row pending",
				zap.String("event_id", event.EventID),
				zap.String("event_type", event.EventType),
				zap.Error(err))
			continue
		}

		plan := committer.NewPlan()
		plan.Add(i.outboxRepo.CompletedMut(event.EventID))
		if err := i.committer.Apply(ctx, plan); err != nil {
			i.logger.Warn("failed to mark outbox row completed",
				zap.String("event_id", event.EventID),
				zap.Error(err))
		}
	}
}
