package m_order

// Field constants for the orders table.
const (
	TableName = "orders"

	ColOrderID          = "order_id"
	ColLinesPayload     = "lines_payload"
	ColItemCount        = "item_count"
	ColTotalNumerator   = "total_numerator"
	ColTotalDenominator = "total_denominator"
	ColPlacedAt         = "placed_at"
)
