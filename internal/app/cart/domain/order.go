package domain

import "time"

// Order is the record of a completed checkout: the cart contents at the
// moment of purchase, frozen. It is handed to an order sink and never
// mutated afterwards.
type Order struct {
	OrderID   string
	Lines     []Line
	ItemCount int
	Total     *Money
	PlacedAt  time.Time
}

// NewOrder freezes the given lines into an order. Lines are copied so later
// cart mutations cannot reach into the recorded order.
func NewOrder(orderID string, lines []Line, itemCount int, total *Money, placedAt time.Time) *Order {
	frozen := make([]Line, len(lines))
	copy(frozen, lines)
	return &Order{
		OrderID:   orderID,
		Lines:     frozen,
		ItemCount: itemCount,
		Total:     total,
		PlacedAt:  placedAt,
	}
}
