// Package order records completed checkouts. The engine hands a frozen
// order to a sink; the Spanner sink writes the order row and an
// order.placed outbox event in one atomic commit.
package order

import (
	"encoding/json"

	"github.com/fullstep/storefront-cart/internal/app/cart/domain"
)

// MarshalOrderLines converts the frozen cart lines into the JSON payload
// stored on the order row. Prices stay in numerator/denominator form.
func MarshalOrderLines(lines []domain.Line) (string, error) {
	type lineJSON struct {
		ID       int64  `json:"id"`
		Title    string `json:"title"`
		PriceNum int64  `json:"price_num"`
		PriceDen int64  `json:"price_den"`
		Quantity int    `json:"quantity"`
	}
	out := make([]lineJSON, 0, len(lines))
	for _, l := range lines {
		out = append(out, lineJSON{
			ID:       l.ID,
			Title:    l.Title,
			PriceNum: l.Price.Numerator(),
			PriceDen: l.Price.Denominator(),
			Quantity: l.Quantity,
		})
	}
	b, err := json.Marshal(out)
	return string(b), err
}

// MarshalOrderPlacedPayload builds the outbox payload for a placed order.
func MarshalOrderPlacedPayload(o *domain.Order) (string, error) {
	payload := map[string]interface{}{
		"order_id":   o.OrderID,
		"item_count": o.ItemCount,
		"total": map[string]interface{}{
			"numerator":   o.Total.Numerator(),
			"denominator": o.Total.Denominator(),
		},
		"placed_at": o.PlacedAt,
	}
	b, err := json.Marshal(payload)
	return string(b), err
}
