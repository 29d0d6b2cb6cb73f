package slotrepo

import (
	"context"

	"dunkstore-backend/internal/domain"
	"dunkstore-backend/pkg/cache"
)

type memoryStore struct {
	cache cache.CacheService
}

// NewMemoryStore keeps slots in an in-process cache. Slots never expire.
func NewMemoryStore(c cache.CacheService) Store {
	return &memoryStore{cache: c}
}

func (s *memoryStore) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := s.cache.Get(key)
	if !ok {
		return nil, domain.ErrSlotNotFound
	}
	data, _ := v.([]byte)
	return append([]byte(nil), data...), nil
}

func (s *memoryStore) Set(_ context.Context, key string, value []byte) error {
	s.cache.Set(key, append([]byte(nil), value...), cache.NoExpiration)
	return nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	s.cache.Delete(key)
	return nil
}

func (s *memoryStore) Close() error {
	return nil
}
