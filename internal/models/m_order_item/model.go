package m_order_item

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the order_items table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting an order item.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{
			OrderItemID,
			OrderID,
			ProductID,
			VariantID,
			Name,
			Size,
			Quantity,
			UnitPriceNumerator,
			UnitPriceDenominator,
		},
		[]interface{}{
			data.OrderItemID,
			data.OrderID,
			data.ProductID,
			data.VariantID,
			data.Name,
			data.Size,
			data.Quantity,
			data.UnitPriceNumerator,
			data.UnitPriceDenominator,
		},
	)
}
