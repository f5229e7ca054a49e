// Package store holds the snapshot store adapters. Every adapter persists
// the whole cart as one JSON document under one fixed key and replaces it
// wholesale on save.
package store

import (
	"encoding/json"
	"fmt"

	"github.com/fullstep/storefront-cart/internal/app/cart/domain"
)

// snapshotLine is the wire form of a cart line. Prices are stored as
// numerator/denominator so a load reproduces the exact amount that was
// saved.
type snapshotLine struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	PriceNum int64  `json:"price_num"`
	PriceDen int64  `json:"price_den"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}

func encodeSnapshot(cart *domain.Cart) ([]byte, error) {
	lines := cart.Lines()
	out := make([]snapshotLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, snapshotLine{
			ID:       l.ID,
			Title:    l.Title,
			PriceNum: l.Price.Numerator(),
			PriceDen: l.Price.Denominator(),
			Image:    l.Image,
			Quantity: l.Quantity,
		})
	}
	return json.Marshal(out)
}

func decodeSnapshot(data []byte) (*domain.Cart, error) {
	var raw []snapshotLine
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	lines := make([]domain.Line, 0, len(raw))
	for _, r := range raw {
		if r.PriceDen == 0 {
			return nil, fmt.Errorf("snapshot line %d: zero price denominator", r.ID)
		}
		if r.Quantity < 1 {
			return nil, fmt.Errorf("snapshot line %d: quantity %d below 1", r.ID, r.Quantity)
		}
		lines = append(lines, domain.Line{
			Product: domain.Product{
				ID:    r.ID,
				Title: r.Title,
				Price: domain.NewMoney(r.PriceNum, r.PriceDen),
				Image: r.Image,
			},
			Quantity: r.Quantity,
		})
	}
	return domain.ReconstructCart(lines), nil
}

// decodeOrEmpty applies the recovery rule shared by every adapter: a
// snapshot that cannot be parsed degrades to an empty cart and never fails
// the load.
func decodeOrEmpty(data []byte) *domain.Cart {
	cart, err := decodeSnapshot(data)
	if err != nil {
		return domain.NewCart()
	}
	return cart
}
