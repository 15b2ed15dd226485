package m_product

// Field name constants for the products table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "products"

	ProductID                = "product_id"
	Name                     = "name"
	Description              = "description"
	Style                    = "style"
	ShopName                 = "shop_name"
	Location                 = "location"
	Rating                   = "rating"
	SoldCount                = "sold_count"
	BasePriceNumerator       = "base_price_numerator"
	BasePriceDenominator     = "base_price_denominator"
	OriginalPriceNumerator   = "original_price_numerator"
	OriginalPriceDenominator = "original_price_denominator"
	Images                   = "images"
	CreatedAt                = "created_at"
	UpdatedAt                = "updated_at"
)
