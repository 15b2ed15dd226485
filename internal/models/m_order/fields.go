package m_order

// Field name constants for the orders table.
const (
	TableName = "orders"

	OrderID             = "order_id"
	SessionID           = "session_id"
	Status              = "status"
	SubtotalNumerator   = "subtotal_numerator"
	SubtotalDenominator = "subtotal_denominator"
	ShippingNumerator   = "shipping_numerator"
	ShippingDenominator = "shipping_denominator"
	TotalNumerator      = "total_numerator"
	TotalDenominator    = "total_denominator"
	CreatedAt           = "created_at"
)

// Order status constants
const (
	StatusPending = "PENDING"
	StatusPaid    = "PAID"
	StatusShipped = "SHIPPED"
)
