package domain

import (
	"strconv"
	"time"
)

// CartEvent is a marker interface for all cart events.
// Cart events represent facts about mutations that have happened to the cart;
// the engine drains them after each operation to drive notifications and
// observer signals.
type CartEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

// LineAddedEvent is raised when a product enters the cart as a new line.
type LineAddedEvent struct {
	ProductID int64
	Title     string
	AddedAt   time.Time
}

func (e *LineAddedEvent) EventType() string {
	return "cart.line_added"
}

func (e *LineAddedEvent) AggregateID() string {
	return strconv.FormatInt(e.ProductID, 10)
}

func (e *LineAddedEvent) OccurredAt() time.Time {
	return e.AddedAt
}

// QuantityChangedEvent is raised when an existing line's quantity changes
// and the line survives (quantity stays at least 1).
type QuantityChangedEvent struct {
	ProductID int64
	Title     string
	Quantity  int
	ChangedAt time.Time
}

func (e *QuantityChangedEvent) EventType() string {
	return "cart.quantity_changed"
}

func (e *QuantityChangedEvent) AggregateID() string {
	return strconv.FormatInt(e.ProductID, 10)
}

func (e *QuantityChangedEvent) OccurredAt() time.Time {
	return e.ChangedAt
}

// LineRemovedEvent is raised when a line leaves the cart, either by explicit
// removal or because its quantity was driven to zero or below.
type LineRemovedEvent struct {
	ProductID int64
	Title     string
	RemovedAt time.Time
}

func (e *LineRemovedEvent) EventType() string {
	return "cart.line_removed"
}

func (e *LineRemovedEvent) AggregateID() string {
	return strconv.FormatInt(e.ProductID, 10)
}

func (e *LineRemovedEvent) OccurredAt() time.Time {
	return e.RemovedAt
}

// CartClearedEvent is raised when the whole cart is emptied explicitly.
type CartClearedEvent struct {
	ClearedAt time.Time
}

func (e *CartClearedEvent) EventType() string {
	return "cart.cleared"
}

func (e *CartClearedEvent) AggregateID() string {
	return "cart"
}

func (e *CartClearedEvent) OccurredAt() time.Time {
	return e.ClearedAt
}

// CheckoutCompletedEvent is raised when a checkout empties the cart and the
// contents have been handed off as a completed order.
type CheckoutCompletedEvent struct {
	OrderID     string
	ItemCount   int
	Total       *Money
	CompletedAt time.Time
}

func (e *CheckoutCompletedEvent) EventType() string {
	return "cart.checkout_completed"
}

func (e *CheckoutCompletedEvent) AggregateID() string {
	return e.OrderID
}

func (e *CheckoutCompletedEvent) OccurredAt() time.Time {
	return e.CompletedAt
}
