package m_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the products table.
type Data struct {
	ProductID                string            `spanner:"product_id"`
	Name                     string            `spanner:"name"`
	Description              string            `spanner:"description"`
	Style                    string            `spanner:"style"`
	ShopName                 string            `spanner:"shop_name"`
	Location                 string            `spanner:"location"`
	Rating                   float64           `spanner:"rating"`
	SoldCount                int64             `spanner:"sold_count"`
	BasePriceNumerator       int64             `spanner:"base_price_numerator"`
	BasePriceDenominator     int64             `spanner:"base_price_denominator"`
	OriginalPriceNumerator   spanner.NullInt64 `spanner:"original_price_numerator"`
	OriginalPriceDenominator spanner.NullInt64 `spanner:"original_price_denominator"`
	Images                   []string          `spanner:"images"`
	CreatedAt                time.Time         `spanner:"created_at"`
	UpdatedAt                time.Time         `spanner:"updated_at"`
}
