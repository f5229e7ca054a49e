package m_cart

// Field constants for the cart_snapshots table.
const (
	TableName = "cart_snapshots"

	ColCartKey   = "cart_key"
	ColPayload   = "payload"
	ColUpdatedAt = "updated_at"
)
