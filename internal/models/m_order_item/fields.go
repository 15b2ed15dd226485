package m_order_item

// Field name constants for the order_items table.
const (
	TableName = "order_items"

	OrderItemID          = "order_item_id"
	OrderID              = "order_id"
	ProductID            = "product_id"
	VariantID            = "variant_id"
	Name                 = "name"
	Size                 = "size"
	Quantity             = "quantity"
	UnitPriceNumerator   = "unit_price_numerator"
	UnitPriceDenominator = "unit_price_denominator"
)
