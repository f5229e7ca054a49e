package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/fullstep/storefront-cart/internal/app/cart/domain"
	"github.com/fullstep/storefront-cart/internal/models/m_order"
)

// OrderRepo is the Spanner implementation of the order write side.
// It returns *spanner.Mutation objects but never applies them.
type OrderRepo struct{}

func NewOrderRepo() *OrderRepo {
	return &OrderRepo{}
}

// buildInsertValues constructs the values map used for insertion.
// Unexported so tests in the same package can inspect the map without
// relying on spanner.Mutation internals.
func buildInsertValues(o *domain.Order, linesPayload string) map[string]interface{} {
	return m_order.BuildInsertMap(
		o.OrderID,
		linesPayload,
		int64(o.ItemCount),
		o.Total.Numerator(),
		o.Total.Denominator(),
		o.PlacedAt.UTC(),
	)
}

// InsertMut builds an Insert mutation for a completed order.
// linesPayload is the pre-marshalled JSON of the frozen cart lines.
func (r *OrderRepo) InsertMut(o *domain.Order, linesPayload string) *spanner.Mutation {
	if o == nil {
		return nil
	}
	return m_order.InsertMutation(buildInsertValues(o, linesPayload))
}
