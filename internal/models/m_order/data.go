package m_order

import "time"

// Data represents the database model for the orders table.
type Data struct {
	OrderID             string    `spanner:"order_id"`
	SessionID           string    `spanner:"session_id"`
	Status              string    `spanner:"status"`
	SubtotalNumerator   int64     `spanner:"subtotal_numerator"`
	SubtotalDenominator int64     `spanner:"subtotal_denominator"`
	ShippingNumerator   int64     `spanner:"shipping_numerator"`
	ShippingDenominator int64     `spanner:"shipping_denominator"`
	TotalNumerator      int64     `spanner:"total_numerator"`
	TotalDenominator    int64     `spanner:"total_denominator"`
	CreatedAt           time.Time `spanner:"created_at"`
}
