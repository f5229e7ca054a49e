package store

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/fullstep/storefront-cart/internal/app/cart/domain"
	"github.com/fullstep/storefront-cart/internal/models/m_cart"
)

// SpannerStore keeps the cart snapshot as a single row in the
// cart_snapshots table, keyed by the fixed cart key.
type SpannerStore struct {
	client *spanner.Client
	key    string
	now    func() time.Time
}

func NewSpannerStore(client *spanner.Client, key string) *SpannerStore {
	return &SpannerStore{
		client: client,
		key:    key,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *SpannerStore) Load(ctx context.Context) (*domain.Cart, error) {
	row, err := s.client.Single().ReadRow(ctx, m_cart.TableName,
		spanner.Key{s.key}, []string{m_cart.ColPayload})
	if err != nil {
		if errors.Is(err, spanner.ErrRowNotFound) {
			return domain.NewCart(), nil
		}
		return nil, err
	}

	var payload string
	if err := row.Columns(&payload); err != nil {
		return domain.NewCart(), nil
	}
	return decodeOrEmpty([]byte(payload)), nil
}

func (s *SpannerStore) Save(ctx context.Context, cart *domain.Cart) error {
	data, err := encodeSnapshot(cart)
	if err != nil {
		return err
	}
	mut := m_cart.UpsertMutation(s.key, string(data), s.now())
	_, err = s.client.Apply(ctx, []*spanner.Mutation{mut})
	return err
}
