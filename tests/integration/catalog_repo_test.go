package integration

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/app/catalog/repo"
	"github.com/light-bringer/storefront-service/internal/models/m_product"
	"github.com/light-bringer/storefront-service/internal/models/m_variant"
	"github.com/light-bringer/storefront-service/tests/testutil"
)

func seedDemoCatalog(t *testing.T, client *spanner.Client) {
	t.Helper()

	products, err := repo.DemoCatalog()
	require.NoError(t, err)

	productModel := m_product.NewModel()
	variantModel := m_variant.NewModel()

	var muts []*spanner.Mutation
	for _, product := range products {
		baseNum, _ := product.BasePrice().Numerator()
		baseDenom, _ := product.BasePrice().Denominator()

		data := &m_product.Data{
			ProductID:            product.ID(),
			Name:                 product.Name(),
			Description:          product.Description(),
			Style:                string(product.Style()),
			ShopName:             product.ShopName(),
			Location:             product.Location(),
			Rating:               product.Rating(),
			SoldCount:            product.SoldCount(),
			BasePriceNumerator:   baseNum,
			BasePriceDenominator: baseDenom,
			Images:               product.Images(),
		}
		if original := product.OriginalPrice(); original != nil {
			num, _ := original.Numerator()
			denom, _ := original.Denominator()
			data.OriginalPriceNumerator = spanner.NullInt64{Int64: num, Valid: true}
			data.OriginalPriceDenominator = spanner.NullInt64{Int64: denom, Valid: true}
		}
		muts = append(muts, productModel.InsertMut(data))

		for position, variant := range product.Variants() {
			muts = append(muts, variantModel.InsertMut(&m_variant.Data{
				VariantID:     variant.ID(),
				ProductID:     product.ID(),
				Size:          variant.Size(),
				StockQuantity: int64(variant.Stock()),
				Position:      int64(position),
			}))
		}
	}

	_, err = client.Apply(context.Background(), muts)
	require.NoError(t, err)
}

func TestCatalogRepo_GetProduct(t *testing.T) {
	testutil.RequireEmulator(t)

	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()
	seedDemoCatalog(t, client)

	catalog := repo.NewCatalogRepo(client)
	ctx := context.Background()

	t.Run("reconstructs product with ordered variants", func(t *testing.T) {
		product, err := catalog.GetProduct(ctx, "prod_001")
		require.NoError(t, err)

		assert.Equal(t, "IPAP LOGO EMBROIDERED FITTED", product.Name())
		assert.Equal(t, "3495.00", product.BasePrice().String())
		require.NotNil(t, product.OriginalPrice())
		assert.Equal(t, "4500.00", product.OriginalPrice().String())
		assert.Len(t, product.Variants(), 8)

		// Position ordering puts size 7 first.
		assert.Equal(t, "7", product.Variants()[0].Size())
	})

	t.Run("missing product maps to domain error", func(t *testing.T) {
		_, err := catalog.GetProduct(ctx, "prod_404")
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestCatalogRepo_ListProducts(t *testing.T) {
	testutil.RequireEmulator(t)

	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()
	seedDemoCatalog(t, client)

	catalog := repo.NewCatalogRepo(client)
	ctx := context.Background()

	t.Run("lists full catalog with variants attached", func(t *testing.T) {
		products, err := catalog.ListProducts(ctx, nil)
		require.NoError(t, err)
		require.Len(t, products, 4)
		for _, p := range products {
			assert.Len(t, p.Variants(), 8, "product %s", p.ID())
		}
	})

	t.Run("style filter runs in SQL", func(t *testing.T) {
		products, err := catalog.ListProducts(ctx, &contracts.ListFilter{Style: "TRUCKER"})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "prod_004", products[0].ID())
	})
}
