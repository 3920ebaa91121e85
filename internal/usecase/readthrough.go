package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"restaurant-reservation/internal/data/cachekey"
	"restaurant-reservation/pkg/cache"
	"restaurant-reservation/pkg/utils"

	"go.uber.org/zap"
)

// Negative cache sentinels, a confirmed absence of one entity or of a whole
// collection.
var (
	emptyObject = []byte("{}")
	emptyList   = []byte("[]")
)

type cachePolicy struct {
	store cache.Store
	keys  cachekey.Builder
	ttl   time.Duration
	log   *zap.Logger
}

func newCachePolicy(store cache.Store, keys cachekey.Builder, ttl time.Duration, log *zap.Logger) *cachePolicy {
	return &cachePolicy{
		store: store,
		keys:  keys,
		ttl:   ttl,
		log:   log.With(zap.String("component", "cache")),
	}
}

// lookup returns the cached bytes of key. Entries that fail to decode are
// treated as misses by the callers.
func (p *cachePolicy) lookup(ctx context.Context, key string) ([]byte, bool, error) {
	raw, found, err := p.store.Get(ctx, key)
	if err != nil {
		p.log.Error("Cache read failed", zap.Error(err), zap.String("key", key))
		return nil, false, fmt.Errorf("read cache %s: %w", key, err)
	}
	return raw, found, nil
}

func (p *cachePolicy) put(ctx context.Context, key string, raw []byte) error {
	if err := p.store.Set(ctx, key, raw, p.ttl); err != nil {
		p.log.Error("Cache write failed", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("write cache %s: %w", key, err)
	}
	return nil
}

// invalidate drops every key a write may have made stale
func (p *cachePolicy) invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := p.store.Delete(ctx, keys...); err != nil {
		p.log.Error("Cache invalidation failed", zap.Error(err), zap.Strings("keys", keys))
		return fmt.Errorf("invalidate cache: %w", err)
	}
	p.log.Debug("Cache invalidated", zap.Strings("keys", keys))
	return nil
}

// fetchOne serves key from the cache, falling back to load on a miss.
// A nil result is cached as the empty object and reported as not found.
func fetchOne[T any](ctx context.Context, p *cachePolicy, key string, load func(context.Context) (*T, error), notFound string) (*T, error) {
	raw, found, err := p.lookup(ctx, key)
	if err != nil {
		return nil, err
	}
	if found {
		if bytes.Equal(raw, emptyObject) {
			return nil, utils.NotFound("%s", notFound)
		}
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			return &cached, nil
		}
		p.log.Warn("Discarding undecodable cache entry", zap.String("key", key))
	}

	value, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if value == nil {
		if err := p.put(ctx, key, emptyObject); err != nil {
			return nil, err
		}
		return nil, utils.NotFound("%s", notFound)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode cache entry %s: %w", key, err)
	}
	if err := p.put(ctx, key, data); err != nil {
		return nil, err
	}
	return value, nil
}

// fetchMany is fetchOne for collections, an empty collection is cached as
// the empty list and reported as not found.
func fetchMany[T any](ctx context.Context, p *cachePolicy, key string, load func(context.Context) ([]T, error), notFound string) ([]T, error) {
	raw, found, err := p.lookup(ctx, key)
	if err != nil {
		return nil, err
	}
	if found {
		if bytes.Equal(raw, emptyList) {
			return nil, utils.NotFound("%s", notFound)
		}
		var cached []T
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		p.log.Warn("Discarding undecodable cache entry", zap.String("key", key))
	}

	values, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if len(values) == 0 {
		if err := p.put(ctx, key, emptyList); err != nil {
			return nil, err
		}
		return nil, utils.NotFound("%s", notFound)
	}

	data, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("encode cache entry %s: %w", key, err)
	}
	if err := p.put(ctx, key, data); err != nil {
		return nil, err
	}
	return values, nil
}
