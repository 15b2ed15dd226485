package m_variant

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the product_variants table.
// Variant ids are the table's primary key, which is what guarantees the
// global uniqueness cart operations rely on.
type Data struct {
	VariantID                string            `spanner:"variant_id"`
	ProductID                string            `spanner:"product_id"`
	Size                     string            `spanner:"size"`
	StockQuantity            int64             `spanner:"stock_quantity"`
	PriceOverrideNumerator   spanner.NullInt64 `spanner:"price_override_numerator"`
	PriceOverrideDenominator spanner.NullInt64 `spanner:"price_override_denominator"`
	Position                 int64             `spanner:"position"`
	CreatedAt                time.Time         `spanner:"created_at"`
}
