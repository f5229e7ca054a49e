package domain

import (
	"strings"
	"time"
)

// Product is the catalog record a cart line is created from. Identity is the
// integer catalog id; title, price and image are carried for display and are
// frozen into the line when the product is first added.
type Product struct {
	ID    int64
	Title string
	Price *Money
	Image string
}

// Validate checks the type shape of a product handed in by a caller.
func (p Product) Validate() error {
	if p.ID <= 0 {
		return ErrInvalidProductID
	}
	if strings.TrimSpace(p.Title) == "" {
		return ErrEmptyProductTitle
	}
	if p.Price == nil {
		return ErrNilPrice
	}
	if p.Price.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}

// Line is a product plus the quantity held in the cart. Quantity is always
// at least 1; a mutation that would drive it to zero removes the line.
type Line struct {
	Product
	Quantity int
}

// Subtotal returns unit price times quantity, exact.
func (l Line) Subtotal() *Money {
	return l.Price.MultiplyByInt(int64(l.Quantity))
}

// Cart is the aggregate root for the shopping cart. It holds an ordered
// sequence of lines, at most one per product id; insertion order is the
// order in which products were first added and survives quantity edits.
// Removing and re-adding a product places it at the end.
type Cart struct {
	lines  []*Line
	events []CartEvent
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{
		lines:  make([]*Line, 0),
		events: make([]CartEvent, 0),
	}
}

// ReconstructCart rebuilds a cart from persisted lines.
// Used by store adapters when loading a snapshot; raises no events.
func ReconstructCart(lines []Line) *Cart {
	c := NewCart()
	for i := range lines {
		l := lines[i]
		c.lines = append(c.lines, &l)
	}
	return c
}

// Lines returns value copies of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.lines))
	for _, l := range c.lines {
		out = append(out, *l)
	}
	return out
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// IsEmpty returns true when the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Find returns a copy of the line for the given product id, if present.
func (c *Cart) Find(productID int64) (Line, bool) {
	for _, l := range c.lines {
		if l.ID == productID {
			return *l, true
		}
	}
	return Line{}, false
}

// Events returns the accumulated cart events.
func (c *Cart) Events() []CartEvent {
	return c.events
}

// DrainEvents returns the accumulated events and clears them.
// The engine calls this once per operation.
func (c *Cart) DrainEvents() []CartEvent {
	evs := c.events
	c.events = make([]CartEvent, 0)
	return evs
}

// Business Methods

// Add puts a product into the cart. If a line with the same id already
// exists its quantity is incremented by 1 and the stored title, price and
// image are left untouched (first-seen wins). Otherwise a new line with
// quantity 1 is appended.
func (c *Cart) Add(p Product, now time.Time) error {
	if err := p.Validate(); err != nil {
		return err
	}

	for _, l := range c.lines {
		if l.ID == p.ID {
			l.Quantity++
			c.events = append(c.events, &QuantityChangedEvent{
				ProductID: l.ID,
				Title:     l.Title,
				Quantity:  l.Quantity,
				ChangedAt: now,
			})
			return nil
		}
	}

	c.lines = append(c.lines, &Line{Product: p, Quantity: 1})
	c.events = append(c.events, &LineAddedEvent{
		ProductID: p.ID,
		Title:     p.Title,
		AddedAt:   now,
	})
	return nil
}

// AdjustQuantity applies a signed delta to the line with the given id.
// A missing id is a silent no-op. When the resulting quantity would be zero
// or below, the line is removed entirely; the cart never stores a
// non-positive quantity. Returns true when the cart changed.
func (c *Cart) AdjustQuantity(productID int64, delta int, now time.Time) bool {
	idx := -1
	for i, l := range c.lines {
		if l.ID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	l := c.lines[idx]
	l.Quantity += delta
	if l.Quantity <= 0 {
		c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
		c.events = append(c.events, &LineRemovedEvent{
			ProductID: l.ID,
			Title:     l.Title,
			RemovedAt: now,
		})
		return true
	}

	c.events = append(c.events, &QuantityChangedEvent{
		ProductID: l.ID,
		Title:     l.Title,
		Quantity:  l.Quantity,
		ChangedAt: now,
	})
	return true
}

// Remove deletes the line with the given id. A missing id is a silent
// no-op. Returns true when a line was removed.
//
// The decision to remove is the caller's: any confirmation step happens
// before this method is invoked.
func (c *Cart) Remove(productID int64, now time.Time) bool {
	for i, l := range c.lines {
		if l.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.events = append(c.events, &LineRemovedEvent{
				ProductID: l.ID,
				Title:     l.Title,
				RemovedAt: now,
			})
			return true
		}
	}
	return false
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear(now time.Time) {
	c.lines = make([]*Line, 0)
	c.events = append(c.events, &CartClearedEvent{ClearedAt: now})
}

// CompleteCheckout empties the cart after its contents have been recorded
// as the order with the given id. The caller guarantees the cart is
// non-empty; checkout is all-or-nothing.
func (c *Cart) CompleteCheckout(orderID string, total *Money, itemCount int, now time.Time) {
	c.lines = make([]*Line, 0)
	c.events = append(c.events, &CheckoutCompletedEvent{
		OrderID:     orderID,
		ItemCount:   itemCount,
		Total:       total,
		CompletedAt: now,
	})
}
