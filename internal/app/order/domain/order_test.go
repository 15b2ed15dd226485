package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdomain "github.com/light-bringer/storefront-service/internal/app/cart/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/money"
)

func checkoutProjection(t *testing.T) *cartdomain.CheckoutProjection {
	t.Helper()

	price, err := money.FromDecimalString("1000.00")
	require.NoError(t, err)
	shipping, err := money.FromDecimalString("150.00")
	require.NoError(t, err)

	cart := cartdomain.New()
	require.NoError(t, cart.AddLine(cartdomain.LineInput{
		ProductID: "prod-1",
		VariantID: "var-1",
		Name:      "Fitted Cap",
		Size:      "7 1/4",
		UnitPrice: price,
		Quantity:  2,
	}))

	projection, err := cartdomain.NewCheckoutProjection(cart, shipping)
	require.NoError(t, err)
	return projection
}

func TestPlaceOrder(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("captures projection totals and lines", func(t *testing.T) {
		order, err := PlaceOrder("sess-1", checkoutProjection(t), now)
		require.NoError(t, err)

		assert.NotEmpty(t, order.ID())
		assert.Equal(t, "sess-1", order.SessionID())
		assert.Equal(t, StatusPending, order.Status())
		assert.Equal(t, now, order.CreatedAt())
		assert.Equal(t, "2000.00", order.Subtotal().String())
		assert.Equal(t, "150.00", order.ShippingCost().String())
		assert.Equal(t, "2150.00", order.Total().String())

		items := order.Items()
		require.Len(t, items, 1)
		assert.Equal(t, "prod-1", items[0].ProductID())
		assert.Equal(t, "var-1", items[0].VariantID())
		assert.Equal(t, "Fitted Cap", items[0].Name())
		assert.Equal(t, "7 1/4", items[0].Size())
		assert.Equal(t, 2, items[0].Quantity())
		assert.Equal(t, "1000.00", items[0].UnitPrice().String())
		assert.NotEmpty(t, items[0].ID())
	})

	t.Run("records order placed event", func(t *testing.T) {
		order, err := PlaceOrder("sess-1", checkoutProjection(t), now)
		require.NoError(t, err)

		events := order.Events()
		require.Len(t, events, 1)

		placed, ok := events[0].(*OrderPlacedEvent)
		require.True(t, ok)
		assert.Equal(t, "order.placed", placed.EventType())
		assert.Equal(t, order.ID(), placed.AggregateID())
		assert.Equal(t, "sess-1", placed.SessionID)
		assert.Equal(t, 1, placed.ItemCount)
		assert.Equal(t, "2150.00", placed.Total.String())
		assert.Equal(t, now, placed.PlacedAt)

		order.ClearEvents()
		assert.Empty(t, order.Events())
	})

	t.Run("empty session rejected", func(t *testing.T) {
		_, err := PlaceOrder("", checkoutProjection(t), now)
		assert.ErrorIs(t, err, ErrEmptySession)
	})
}
