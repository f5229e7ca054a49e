package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/fullstep/storefront-cart/internal/app/cart/domain"
)

// RedisStore keeps the cart snapshot under a single Redis key, the way
// guest carts commonly live in Redis. No TTL: the cart survives until it is
// cleared or checked out.
type RedisStore struct {
	rdb *redis.Client
	key string
}

func NewRedisStore(rdb *redis.Client, key string) *RedisStore {
	return &RedisStore{rdb: rdb, key: key}
}

func (s *RedisStore) Load(ctx context.Context) (*domain.Cart, error) {
	data, err := s.rdb.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.NewCart(), nil
		}
		return nil, err
	}
	return decodeOrEmpty(data), nil
}

func (s *RedisStore) Save(ctx context.Context, cart *domain.Cart) error {
	data, err := encodeSnapshot(cart)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.key, data, 0).Err()
}
