package contracts

import (
	"context"

	"github.com/fullstep/storefront-cart/internal/app/cart/domain"
)

// OrderSink receives the completed order at checkout. What happens to it
// downstream (fulfilment, payment) is outside this system; the engine only
// hands the frozen cart contents over before emptying the cart.
type OrderSink interface {
	Record(ctx context.Context, order *domain.Order) error
}
