package cache

import (
	"context"
	"time"

	"github.com/viccon/sturdyc"
)

const (
	memoryShards             = 64
	memoryEvictionPercentage = 10
)

// MemoryStore keeps entries in process. sturdyc applies one TTL per client,
// the ttl passed to Set is ignored in favour of the one given to NewMemoryStore.
type MemoryStore struct {
	client *sturdyc.Client[[]byte]
}

func NewMemoryStore(capacity int, ttl time.Duration) *MemoryStore {
	if capacity <= 0 {
		capacity = 10000
	}
	return &MemoryStore{
		client: sturdyc.New[[]byte](capacity, memoryShards, ttl, memoryEvictionPercentage),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	value, ok := s.client.Get(key)
	return value, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	s.client.Set(key, stored)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		s.client.Delete(key)
	}
	return nil
}

func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
