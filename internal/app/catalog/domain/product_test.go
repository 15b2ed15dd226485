package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/pkg/money"
)

func validProduct(t *testing.T, variants ...*Variant) *Product {
	t.Helper()
	price, _ := money.New(3495, 1)
	p, err := NewProduct(
		"prod_001", "IPAP LOGO EMBROIDERED FITTED",
		price, nil, StyleFitted,
		"Premium Japanese twill.",
		[]string{"https://example.com/front.jpg"},
		variants,
		4.9, 1240, "Makati City", "IPAP Official",
	)
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	price, _ := money.New(2250, 1)

	t.Run("valid product creation", func(t *testing.T) {
		p := validProduct(t, mustVariant(t, "v1", "7", 5))
		assert.Equal(t, "prod_001", p.ID())
		assert.Equal(t, StyleFitted, p.Style())
		assert.Len(t, p.Variants(), 1)
	})

	t.Run("empty name returns error", func(t *testing.T) {
		_, err := NewProduct("p1", "", price, nil, StyleFitted, "", nil, nil, 0, 0, "", "")
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("zero price returns error", func(t *testing.T) {
		zero := money.Zero()
		_, err := NewProduct("p1", "Cap", zero, nil, StyleFitted, "", nil, nil, 0, 0, "", "")
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("unknown style returns error", func(t *testing.T) {
		_, err := NewProduct("p1", "Cap", price, nil, Style("BEANIE"), "", nil, nil, 0, 0, "", "")
		assert.ErrorIs(t, err, ErrInvalidStyle)
	})

	t.Run("duplicate variant ids rejected", func(t *testing.T) {
		variants := []*Variant{
			mustVariant(t, "v1", "7", 5),
			mustVariant(t, "v1", "7 1/8", 5),
		}
		_, err := NewProduct("p1", "Cap", price, nil, StyleFitted, "", nil, variants, 0, 0, "", "")
		assert.ErrorIs(t, err, ErrDuplicateVariant)
	})
}

func TestParseStyle(t *testing.T) {
	for _, s := range []string{"FITTED", "SNAPBACK", "DAD_HAT", "TRUCKER", "APPAREL"} {
		style, err := ParseStyle(s)
		require.NoError(t, err)
		assert.Equal(t, Style(s), style)
	}

	_, err := ParseStyle("BUCKET")
	assert.ErrorIs(t, err, ErrInvalidStyle)
}

func TestProduct_DiscountPercent(t *testing.T) {
	t.Run("markdown against original price", func(t *testing.T) {
		price, _ := money.New(3495, 1)
		original, _ := money.New(4500, 1)
		p, err := NewProduct("p1", "Cap", price, original, StyleFitted, "", nil, nil, 0, 0, "", "")
		require.NoError(t, err)

		pct, ok := p.DiscountPercent()
		assert.True(t, ok)
		assert.Equal(t, int64(22), pct)
	})

	t.Run("no original price means no markdown", func(t *testing.T) {
		p := validProduct(t)
		_, ok := p.DiscountPercent()
		assert.False(t, ok)
	})
}

func TestProduct_Variant(t *testing.T) {
	p := validProduct(t, mustVariant(t, "v1", "7", 5), mustVariant(t, "v2", "7 1/8", 0))

	t.Run("found", func(t *testing.T) {
		v, err := p.Variant("v2")
		require.NoError(t, err)
		assert.Equal(t, "7 1/8", v.Size())
	})

	t.Run("missing", func(t *testing.T) {
		_, err := p.Variant("nope")
		assert.ErrorIs(t, err, ErrVariantNotFound)
	})
}

func TestProduct_SortedVariants(t *testing.T) {
	p := validProduct(t,
		mustVariant(t, "v1", "7 1/2", 5),
		mustVariant(t, "v2", "7", 5),
	)
	sorted := p.SortedVariants()
	assert.Equal(t, "7", sorted[0].Size())
	assert.Equal(t, "7 1/2", sorted[1].Size())
}
