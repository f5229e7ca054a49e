// Package engine owns the authoritative in-memory cart and mediates every
// mutation through one path: mutate the collection, persist the snapshot,
// signal observers, emit exactly one notification.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/fullstep/storefront-cart/internal/app/cart/contracts"
	"github.com/fullstep/storefront-cart/internal/app/cart/domain"
	"github.com/fullstep/storefront-cart/internal/app/cart/projection"
	"github.com/fullstep/storefront-cart/internal/pkg/clock"
	"github.com/fullstep/storefront-cart/internal/pkg/logger"
)

// Observer is called with a fresh copy of the cart lines after every state
// change, once the snapshot has been persisted.
type Observer func(lines []domain.Line)

// Engine is the cart state engine. All operations are serialized: each runs
// to completion (mutate, persist, observers, notification) before the next
// begins. There is exactly one logical writer, so this mutex is the whole
// concurrency story.
type Engine struct {
	mu sync.Mutex

	cart      *domain.Cart
	store     contracts.SnapshotStore
	sink      contracts.OrderSink
	notifier  contracts.Notifier
	clk       clock.Clock
	log       *logger.Logger
	observers []Observer
}

// New loads the persisted snapshot and constructs the engine around it.
// A missing or unreadable snapshot degrades to an empty cart; startup never
// fails on persistence.
func New(ctx context.Context, store contracts.SnapshotStore, sink contracts.OrderSink, notifier contracts.Notifier, clk clock.Clock, log *logger.Logger) *Engine {
	cart, err := store.Load(ctx)
	if err != nil || cart == nil {
		if err != nil {
			log.Warn("cart snapshot load failed, starting empty", "error", err)
		}
		cart = domain.NewCart()
	}
	return &Engine{
		cart:     cart,
		store:    store,
		sink:     sink,
		notifier: notifier,
		clk:      clk,
		log:      log,
	}
}

// Subscribe registers an observer. Intended to be called once at setup,
// before the engine starts taking operations.
func (e *Engine) Subscribe(obs Observer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.observers = append(e.observers, obs)
}

// Snapshot returns a read-only copy of the current cart lines.
func (e *Engine) Snapshot() []domain.Line {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cart.Lines()
}

// AddToCart puts a product into the cart: a new line with quantity 1, or an
// increment of the existing line for the same id (first-seen wins on title,
// price and image). Returns an error only for a malformed product record.
func (e *Engine) AddToCart(ctx context.Context, p domain.Product) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.cart.Add(p, e.clk.Now()); err != nil {
		return err
	}
	e.commit(ctx)
	e.notifier.Notify(contracts.Notification{
		Message:  fmt.Sprintf("%q added to cart.", p.Title),
		Severity: contracts.SeveritySuccess,
	})
	e.log.Debug("product added", "product_id", p.ID)
	return nil
}

// UpdateQuantity applies a signed delta to the line with the given id.
// An unknown id is a silent no-op. Driving the quantity to zero or below
// removes the line and reports the removal with error severity.
func (e *Engine) UpdateQuantity(ctx context.Context, productID int64, delta int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.cart.AdjustQuantity(productID, delta, e.clk.Now()) {
		return
	}
	events := e.cart.Events()
	e.commit(ctx)

	for _, ev := range events {
		switch v := ev.(type) {
		case *domain.QuantityChangedEvent:
			e.notifier.Notify(contracts.Notification{
				Message:  fmt.Sprintf("Quantity of %q updated to %d.", v.Title, v.Quantity),
				Severity: contracts.SeveritySuccess,
			})
		case *domain.LineRemovedEvent:
			e.notifier.Notify(contracts.Notification{
				Message:  fmt.Sprintf("%q removed from cart.", v.Title),
				Severity: contracts.SeverityError,
			})
		}
	}
	e.log.Debug("quantity updated", "product_id", productID, "delta", delta)
}

// RemoveItem deletes the line with the given id. An unknown id is a silent
// no-op. The engine does not prompt: callers obtain confirmation before
// invoking this, and a declined confirmation means the call never happens.
func (e *Engine) RemoveItem(ctx context.Context, productID int64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	line, found := e.cart.Find(productID)
	if !found {
		return
	}
	e.cart.Remove(productID, e.clk.Now())
	e.commit(ctx)
	e.notifier.Notify(contracts.Notification{
		Message:  fmt.Sprintf("%q removed from cart.", line.Title),
		Severity: contracts.SeverityError,
	})
	e.log.Debug("line removed", "product_id", productID)
}

// ClearCart empties the cart unconditionally. Confirmation, like removal,
// is the caller's concern.
func (e *Engine) ClearCart(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.cart.Clear(e.clk.Now())
	e.commit(ctx)
	e.notifier.Notify(contracts.Notification{
		Message:  "Cart has been cleared.",
		Severity: contracts.SeverityError,
	})
	e.log.Info("cart cleared")
}

// Checkout records the cart contents as a completed order, empties the cart
// and returns the order. On an empty cart it returns domain.ErrEmptyCart,
// emits an error notification and changes nothing. Checkout never partially
// empties the cart.
func (e *Engine) Checkout(ctx context.Context) (*domain.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cart.IsEmpty() {
		e.notifier.Notify(contracts.Notification{
			Message:  "Your cart is empty. Add products before checking out!",
			Severity: contracts.SeverityError,
		})
		return nil, domain.ErrEmptyCart
	}

	now := e.clk.Now()
	lines := e.cart.Lines()
	order := domain.NewOrder(
		uuid.New().String(),
		lines,
		projection.TotalItemCount(lines),
		projection.GrandTotal(lines),
		now,
	)

	// The sink is external hand-off; a failure there does not hold the cart
	// hostage. The divergence is logged and accepted.
	if err := e.sink.Record(ctx, order); err != nil {
		e.log.Error("order sink record failed", "order_id", order.OrderID, "error", err)
	}

	e.cart.CompleteCheckout(order.OrderID, order.Total, order.ItemCount, now)
	e.commit(ctx)
	e.notifier.Notify(contracts.Notification{
		Message:  "Thank you for your purchase!",
		Severity: contracts.SeveritySuccess,
	})
	e.log.Info("checkout completed", "order_id", order.OrderID, "items", order.ItemCount, "total", order.Total.String())
	return order, nil
}

// commit runs the persist-then-signal tail of every mutation. The snapshot
// is written before any observer sees the new state; a write failure leaves
// the in-memory mutation applied and is only logged.
func (e *Engine) commit(ctx context.Context) {
	e.cart.DrainEvents()
	if err := e.store.Save(ctx, e.cart); err != nil {
		e.log.Warn("cart snapshot save failed", "error", err)
	}
	lines := e.cart.Lines()
	for _, obs := range e.observers {
		obs(lines)
	}
}
