package m_product

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the products table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// Columns returns the full column list in Data order, for reads.
func (m *Model) Columns() []string {
	return []string{
		ProductID,
		Name,
		Description,
		Style,
		ShopName,
		Location,
		Rating,
		SoldCount,
		BasePriceNumerator,
		BasePriceDenominator,
		OriginalPriceNumerator,
		OriginalPriceDenominator,
		Images,
		CreatedAt,
		UpdatedAt,
	}
}

// InsertMut creates a Spanner mutation for inserting a product.
// Used by the catalog seeding tool; the storefront itself never writes here.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		m.Columns(),
		[]interface{}{
			data.ProductID,
			data.Name,
			data.Description,
			data.Style,
			data.ShopName,
			data.Location,
			data.Rating,
			data.SoldCount,
			data.BasePriceNumerator,
			data.BasePriceDenominator,
			data.OriginalPriceNumerator,
			data.OriginalPriceDenominator,
			data.Images,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}
