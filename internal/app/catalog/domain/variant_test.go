package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/pkg/money"
)

func mustVariant(t *testing.T, id, size string, stock int) *Variant {
	t.Helper()
	v, err := NewVariant(id, size, stock, nil)
	require.NoError(t, err)
	return v
}

func TestNewVariant(t *testing.T) {
	t.Run("valid variant", func(t *testing.T) {
		override, _ := money.New(2890, 1)
		v, err := NewVariant("v1", "7 1/8", 4, override)
		require.NoError(t, err)
		assert.Equal(t, "v1", v.ID())
		assert.Equal(t, "7 1/8", v.Size())
		assert.Equal(t, 4, v.Stock())
	})

	t.Run("empty size returns error", func(t *testing.T) {
		_, err := NewVariant("v1", "", 4, nil)
		assert.ErrorIs(t, err, ErrEmptySize)
	})

	t.Run("negative stock returns error", func(t *testing.T) {
		_, err := NewVariant("v1", "7", -1, nil)
		assert.ErrorIs(t, err, ErrNegativeStock)
	})
}

func TestVariant_UnitPrice(t *testing.T) {
	base, _ := money.New(3495, 1)

	t.Run("override wins", func(t *testing.T) {
		override, _ := money.New(3200, 1)
		v, _ := NewVariant("v1", "7", 5, override)
		assert.True(t, v.UnitPrice(base).Equals(override))
	})

	t.Run("falls back to base price", func(t *testing.T) {
		v, _ := NewVariant("v1", "7", 5, nil)
		assert.True(t, v.UnitPrice(base).Equals(base))
	})
}

func TestSortVariants(t *testing.T) {
	t.Run("fraction sizes sort ascending", func(t *testing.T) {
		variants := []*Variant{
			mustVariant(t, "a", "7 1/4", 5),
			mustVariant(t, "b", "7", 5),
			mustVariant(t, "c", "7 1/2", 5),
			mustVariant(t, "d", "7 1/8", 5),
		}

		sorted := SortVariants(variants)

		sizes := make([]string, 0, len(sorted))
		for _, v := range sorted {
			sizes = append(sizes, v.Size())
		}
		assert.Equal(t, []string{"7", "7 1/8", "7 1/4", "7 1/2"}, sizes)

		// input order untouched
		assert.Equal(t, "7 1/4", variants[0].Size())
	})

	t.Run("unparseable labels default to zero and keep relative order", func(t *testing.T) {
		variants := []*Variant{
			mustVariant(t, "a", "M", 5),
			mustVariant(t, "b", "OSF", 5),
			mustVariant(t, "c", "7", 5),
		}

		sorted := SortVariants(variants)

		assert.Equal(t, "M", sorted[0].Size())
		assert.Equal(t, "OSF", sorted[1].Size())
		assert.Equal(t, "7", sorted[2].Size())
	})
}

func TestVariant_Status(t *testing.T) {
	tests := []struct {
		name   string
		stock  int
		status StockStatus
	}{
		{"zero stock is out of stock", 0, StatusOutOfStock},
		{"one is low stock", 1, StatusLowStock},
		{"two is low stock", 2, StatusLowStock},
		{"three is in stock", 3, StatusInStock},
		{"plenty is in stock", 20, StatusInStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := mustVariant(t, "v", "7", tt.stock)
			assert.Equal(t, tt.status, v.Status())
		})
	}
}

func TestVariant_StockNotice(t *testing.T) {
	t.Run("out of stock", func(t *testing.T) {
		msg, urgent := mustVariant(t, "v", "7", 0).StockNotice()
		assert.Equal(t, "Out of Stock", msg)
		assert.True(t, urgent)
	})

	t.Run("below urgency threshold uses literal count", func(t *testing.T) {
		msg, urgent := mustVariant(t, "v", "7", 4).StockNotice()
		assert.Equal(t, "Only 4 left!", msg)
		assert.True(t, urgent)
	})

	t.Run("at threshold no notice", func(t *testing.T) {
		msg, urgent := mustVariant(t, "v", "7", 5).StockNotice()
		assert.Empty(t, msg)
		assert.False(t, urgent)
	})
}

func TestVariantSelection(t *testing.T) {
	t.Run("selecting out of stock keeps previous selection", func(t *testing.T) {
		sel := NewVariantSelection()
		sel.ViewProduct("prod_001")

		inStock := mustVariant(t, "v1", "7", 5)
		oos := mustVariant(t, "v2", "7 1/8", 0)

		assert.True(t, sel.Select(inStock))
		assert.False(t, sel.Select(oos))

		id, ok := sel.SelectedVariantID()
		assert.True(t, ok)
		assert.Equal(t, "v1", id)
	})

	t.Run("selecting out of stock with no prior selection stays empty", func(t *testing.T) {
		sel := NewVariantSelection()
		sel.ViewProduct("prod_001")

		assert.False(t, sel.Select(mustVariant(t, "v2", "7", 0)))
		_, ok := sel.SelectedVariantID()
		assert.False(t, ok)
	})

	t.Run("viewing another product resets selection", func(t *testing.T) {
		sel := NewVariantSelection()
		sel.ViewProduct("prod_001")
		sel.Select(mustVariant(t, "v1", "7", 5))

		sel.ViewProduct("prod_002")
		_, ok := sel.SelectedVariantID()
		assert.False(t, ok)
	})

	t.Run("re-viewing the same product keeps selection", func(t *testing.T) {
		sel := NewVariantSelection()
		sel.ViewProduct("prod_001")
		sel.Select(mustVariant(t, "v1", "7", 5))

		sel.ViewProduct("prod_001")
		id, ok := sel.SelectedVariantID()
		assert.True(t, ok)
		assert.Equal(t, "v1", id)
	})
}
