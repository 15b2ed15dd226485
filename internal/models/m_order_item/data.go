package m_order_item

// Data represents the database model for the order_items table.
// Unit prices are captured at purchase time, independent of later
// catalog price changes.
type Data struct {
	OrderItemID          string `spanner:"order_item_id"`
	OrderID              string `spanner:"order_id"`
	ProductID            string `spanner:"product_id"`
	VariantID            string `spanner:"variant_id"`
	Name                 string `spanner:"name"`
	Size                 string `spanner:"size"`
	Quantity             int64  `spanner:"quantity"`
	UnitPriceNumerator   int64  `spanner:"unit_price_numerator"`
	UnitPriceDenominator int64  `spanner:"unit_price_denominator"`
}
