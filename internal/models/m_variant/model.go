package m_variant

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the product_variants table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// Columns returns the full column list in Data order, for reads.
func (m *Model) Columns() []string {
	return []string{
		VariantID,
		ProductID,
		Size,
		StockQuantity,
		PriceOverrideNumerator,
		PriceOverrideDenominator,
		Position,
		CreatedAt,
	}
}

// InsertMut creates a Spanner mutation for inserting a variant.
// Used by the catalog seeding tool.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		m.Columns(),
		[]interface{}{
			data.VariantID,
			data.ProductID,
			data.Size,
			data.StockQuantity,
			data.PriceOverrideNumerator,
			data.PriceOverrideDenominator,
			data.Position,
			spanner.CommitTimestamp,
		},
	)
}
