// Package services wires the application's dependencies together.
package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"

	cartdomain "github.com/light-bringer/storefront-service/internal/app/cart/domain"
	"github.com/light-bringer/storefront-service/internal/app/cart/queries/checkout_summary"
	"github.com/light-bringer/storefront-service/internal/app/cart/queries/view_cart"
	"github.com/light-bringer/storefront-service/internal/app/cart/usecases/add_to_cart"
	"github.com/light-bringer/storefront-service/internal/app/cart/usecases/remove_item"
	"github.com/light-bringer/storefront-service/internal/app/cart/usecases/toggle_drawer"
	"github.com/light-bringer/storefront-service/internal/app/cart/usecases/toggle_selection"
	"github.com/light-bringer/storefront-service/internal/app/cart/usecases/update_quantity"
	catalogcontracts "github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/list_products"
	catalogrepo "github.com/light-bringer/storefront-service/internal/app/catalog/repo"
	"github.com/light-bringer/storefront-service/internal/app/catalog/usecases/select_variant"
	ordercontracts "github.com/light-bringer/storefront-service/internal/app/order/contracts"
	orderrepo "github.com/light-bringer/storefront-service/internal/app/order/repo"
	"github.com/light-bringer/storefront-service/internal/app/order/usecases/place_order"
	"github.com/light-bringer/storefront-service/internal/config"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
	"github.com/light-bringer/storefront-service/internal/pkg/rabbitmq"
	"github.com/light-bringer/storefront-service/internal/sessions"
	httptransport "github.com/light-bringer/storefront-service/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	Broker        *rabbitmq.RabbitMQ
	Handler       *httptransport.Handler
	Logger        *zap.Logger
}

// NewServiceOptions creates and wires up all application dependencies.
// With UseMemoryCatalog set, the service runs against the demo catalog and
// skips Spanner and the broker entirely, which is how local development and
// the end-to-end tests run.
func NewServiceOptions(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*ServiceOptions, error) {
	opts := &ServiceOptions{Logger: logger}

	var (
		catalog   catalogcontracts.CatalogRepository
		cmt       ordercontracts.Committer
		publisher ordercontracts.EventPublisher
	)

	if cfg.UseMemoryCatalog {
		products, err := catalogrepo.DemoCatalog()
		if err != nil {
			return nil, fmt.Errorf("failed to build demo catalog: %w", err)
		}
		catalog, err = catalogrepo.NewMemoryCatalog(products)
		if err != nil {
			return nil, fmt.Errorf("failed to build memory catalog: %w", err)
		}
		cmt = discardCommitter{}
		publisher = logPublisher{logger: logger}
	} else {
		spannerClient, err := spanner.NewClient(ctx, cfg.SpannerDB)
		if err != nil {
			return nil, fmt.Errorf("failed to create Spanner client: %w", err)
		}
		opts.SpannerClient = spannerClient
		catalog = catalogrepo.NewCatalogRepo(spannerClient)
		cmt = committer.NewCommitter(spannerClient)

		broker, err := rabbitmq.New(cfg.RabbitMQURL, cfg.OrderExchange, cfg.OrderQueue)
		if err != nil {
			opts.Close()
			return nil, fmt.Errorf("failed to connect to broker: %w", err)
		}
		if err := broker.SetupTopology(); err != nil {
			broker.Close()
			opts.Close()
			return nil, fmt.Errorf("failed to set up broker topology: %w", err)
		}
		opts.Broker = broker
		publisher = broker
	}

	clk := clock.NewRealClock()
	store := sessions.NewStore(func(e cartdomain.DomainEvent) {
		logger.Debug("cart event", zap.String("event_type", e.EventType()))
	})

	placeOrder := place_order.NewInteractor(
		store,
		orderrepo.NewOrderRepo(),
		orderrepo.NewOutboxRepo(clk),
		cmt,
		publisher,
		clk,
		cfg.ShippingCost,
		cfg.ProcessingDelay,
		logger,
	)

	opts.Handler = httptransport.NewHandler(
		logger,
		list_products.NewQuery(catalog),
		get_product.NewQuery(catalog),
		select_variant.NewInteractor(catalog, store),
		view_cart.NewQuery(store),
		add_to_cart.NewInteractor(catalog, store),
		remove_item.NewInteractor(store),
		update_quantity.NewInteractor(store),
		toggle_selection.NewInteractor(store),
		toggle_drawer.NewInteractor(store),
		checkout_summary.NewQuery(store, cfg.ShippingCost),
		placeOrder,
	)

	return opts, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.Broker != nil {
		s.Broker.Close()
	}
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}

// discardCommitter drops mutations, used when running without Spanner.
type discardCommitter struct{}

func (discardCommitter) Apply(context.Context, *committer.CommitPlan) error { return nil }

// logPublisher logs events instead of publishing, used when running without
// a broker.
type logPublisher struct {
	logger *zap.Logger
}

func (p logPublisher) Publish(_ context.Context, eventType string, payload []byte) error {
	p.logger.Info("order event (broker disabled)",
		zap.String("event_type", eventType),
		zap.ByteString("payload", payload))
	return nil
}
