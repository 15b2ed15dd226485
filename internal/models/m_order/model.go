package m_order

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the orders table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting an order.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{
			OrderID,
			SessionID,
			Status,
			SubtotalNumerator,
			SubtotalDenominator,
			ShippingNumerator,
			ShippingDenominator,
			TotalNumerator,
			TotalDenominator,
			CreatedAt,
		},
		[]interface{}{
			data.OrderID,
			data.SessionID,
			data.Status,
			data.SubtotalNumerator,
			data.SubtotalDenominator,
			data.ShippingNumerator,
			data.ShippingDenominator,
			data.TotalNumerator,
			data.TotalDenominator,
			spanner.CommitTimestamp,
		},
	)
}
