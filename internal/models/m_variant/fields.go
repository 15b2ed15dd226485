package m_variant

// Field name constants for the product_variants table.
const (
	TableName = "product_variants"

	VariantID                = "variant_id"
	ProductID                = "product_id"
	Size                     = "size"
	StockQuantity            = "stock_quantity"
	PriceOverrideNumerator   = "price_override_numerator"
	PriceOverrideDenominator = "price_override_denominator"
	Position                 = "position"
	CreatedAt                = "created_at"
)
