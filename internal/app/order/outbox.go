package order

import "time"

// OutboxEvent is the application-level representation of an event persisted
// to the outbox table alongside the order row.
type OutboxEvent struct {
	EventID      string
	EventType    string
	AggregateID  string
	PayloadJSON  string
	Status       string
	CreatedAtUTC time.Time
}
