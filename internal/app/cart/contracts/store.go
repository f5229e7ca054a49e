package contracts

import (
	"context"

	"github.com/fullstep/storefront-cart/internal/app/cart/domain"
)

// SnapshotStore persists the whole cart under a single fixed key.
// Save replaces any prior value (last-writer-wins, no merge). Load returns
// an empty cart when the stored value is missing or unparsable; a corrupt
// snapshot never fails startup.
//
// The engine receives the store at construction, so tests substitute an
// in-memory implementation.
type SnapshotStore interface {
	Load(ctx context.Context) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
}
