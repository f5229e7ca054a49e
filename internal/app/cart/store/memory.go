package store

import (
	"context"
	"sync"

	"github.com/fullstep/storefront-cart/internal/app/cart/domain"
)

// MemoryStore keeps the serialized snapshot in memory. It is the default
// backend for local runs and the substitution point for tests; it goes
// through the same codec as the durable adapters so the round-trip law is
// exercised for real.
type MemoryStore struct {
	mu    sync.Mutex
	data  []byte
	saves int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(ctx context.Context) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return domain.NewCart(), nil
	}
	return decodeOrEmpty(s.data), nil
}

func (s *MemoryStore) Save(ctx context.Context, cart *domain.Cart) error {
	data, err := encodeSnapshot(cart)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data = data
	s.saves++
	s.mu.Unlock()
	return nil
}

// Seed replaces the stored bytes directly; tests use it to simulate a
// pre-existing or corrupt snapshot.
func (s *MemoryStore) Seed(data []byte) {
	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
}

// SaveCount reports how many saves have happened.
func (s *MemoryStore) SaveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
