package ai

import (
	"context"
	"time"

	"github.com/vitalmind/vitalmind/internal/cache"
)

// MemoryCache adapts the in-process TTL cache to SuggestionCache for
// deployments without Redis.
type MemoryCache struct {
	inner *cache.Cache
}

func NewMemoryCache(inner *cache.Cache) *MemoryCache {
	return &MemoryCache{inner: inner}
}

func (m *MemoryCache) GetString(_ context.Context, key string) (string, bool, error) {
	v, ok := m.inner.Get(key)

	if !ok {
		return "", false, nil
	}

	s, ok := v.(string)

	return s, ok, nil
}

func (m *MemoryCache) SetString(_ context.Context, key, val string, ttl time.Duration) error {
	m.inner.SetTTL(key, val, ttl)
	return nil
}
