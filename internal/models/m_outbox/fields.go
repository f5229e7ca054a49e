package m_outbox

const (
	TableName = "outbox_events"

	ColEventID     = "event_id"
	ColEventType   = "event_type"
	ColAggregateID = "aggregate_id"
	ColPayload     = "payload"
	ColStatus      = "status"
	ColCreatedAt   = "created_at"
	ColProcessedAt = "processed_at"
)

// Lifecycle values for ColStatus. Events are inserted pending and flipped
// by the relay once delivered.
const (
	StatusPending   = "pending"
	StatusProcessed = "processed"
)

// Event types emitted by this service.
const (
	EventTypeOrderPlaced = "order.placed"
)
