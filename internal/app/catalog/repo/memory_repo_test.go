package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/money"
)

func demoCatalog(t *testing.T) *MemoryCatalog {
	t.Helper()
	products, err := DemoCatalog()
	require.NoError(t, err)
	catalog, err := NewMemoryCatalog(products)
	require.NoError(t, err)
	return catalog
}

func TestMemoryCatalog_GetProduct(t *testing.T) {
	catalog := demoCatalog(t)
	ctx := context.Background()

	t.Run("returns product with variants", func(t *testing.T) {
		product, err := catalog.GetProduct(ctx, "prod_001")
		require.NoError(t, err)

		assert.Equal(t, "IPAP LOGO EMBROIDERED FITTED", product.Name())
		assert.Equal(t, domain.StyleFitted, product.Style())
		assert.Len(t, product.Variants(), 8)
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		_, err := catalog.GetProduct(ctx, "prod_999")
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestMemoryCatalog_ListProducts(t *testing.T) {
	catalog := demoCatalog(t)
	ctx := context.Background()

	t.Run("no filter returns full catalog", func(t *testing.T) {
		products, err := catalog.ListProducts(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, products, 4)
	})

	t.Run("style filter", func(t *testing.T) {
		products, err := catalog.ListProducts(ctx, &contracts.ListFilter{Style: "FITTED"})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "prod_001", products[0].ID())
	})

	t.Run("price bounds", func(t *testing.T) {
		min, err := money.FromDecimalString("2400.00")
		require.NoError(t, err)
		max, err := money.FromDecimalString("2900.00")
		require.NoError(t, err)

		products, err := catalog.ListProducts(ctx, &contracts.ListFilter{MinPrice: min, MaxPrice: max})
		require.NoError(t, err)

		ids := make([]string, 0, len(products))
		for _, p := range products {
			ids = append(ids, p.ID())
		}
		assert.ElementsMatch(t, []string{"prod_003", "prod_004"}, ids)
	})
}

func TestNewMemoryCatalog_RejectsSharedVariantIDs(t *testing.T) {
	price, err := money.FromDecimalString("100.00")
	require.NoError(t, err)

	variantA, err := domain.NewVariant("v-shared", "7", 5, nil)
	require.NoError(t, err)
	variantB, err := domain.NewVariant("v-shared", "8", 5, nil)
	require.NoError(t, err)

	productA, err := domain.NewProduct("p-a", "Cap A", price, nil, domain.StyleFitted,
		"", nil, []*domain.Variant{variantA}, 4.5, 10, "Makati City", "Shop A")
	require.NoError(t, err)
	productB, err := domain.NewProduct("p-b", "Cap B", price, nil, domain.StyleFitted,
		"", nil, []*domain.Variant{variantB}, 4.5, 10, "Makati City", "Shop B")
	require.NoError(t, err)

	_, err = NewMemoryCatalog([]*domain.Product{productA, productB})
	assert.ErrorIs(t, err, domain.ErrDuplicateVariant)
}

func TestDemoCatalog_StockSpread(t *testing.T) {
	products, err := DemoCatalog()
	require.NoError(t, err)

	// Every demo product should exercise the full availability range so the
	// storefront UI states are all reachable in development.
	for _, p := range products {
		var hasOut, hasLow, hasIn bool
		for _, v := range p.Variants() {
			switch v.Status() {
			case domain.StatusOutOfStock:
				hasOut = true
			case domain.StatusLowStock:
				hasLow = true
			case domain.StatusInStock:
				hasIn = true
			}
		}
		assert.True(t, hasOut, "product %s has no sold-out variant", p.ID())
		assert.True(t, hasLow, "product %s has no low-stock variant", p.ID())
		assert.True(t, hasIn, "product %s has no in-stock variant", p.ID())
	}
}
