package m_outbox

import (
	"time"

	"cloud.google.com/go/spanner"
)

// BuildInsertMap prepares the fields for a pending outbox row. ProcessedAt
// is always nil on insert; the relay fills it when the event ships.
func BuildInsertMap(eventID, eventType, aggregateID string,
	payload, status string, createdAt time.Time) map[string]interface{} {

	return map[string]interface{}{
		ColEventID:     eventID,
		ColEventType:   eventType,
		ColAggregateID: aggregateID,
		ColPayload:     payload,
		ColStatus:      status,
		ColCreatedAt:   createdAt,
		ColProcessedAt: nil,
	}
}

// InsertMutation builds a spanner.Insert mutation for an outbox event using
// a map of values keyed by the column names declared in fields.go.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}
