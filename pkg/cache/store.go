// Package cache provides the key-value stores behind the read-through cache.
package cache

import (
	"context"
	"fmt"
	"time"

	"restaurant-reservation/pkg/utils"

	"go.uber.org/zap"
)

// Store is a byte oriented key-value store with expiry.
type Store interface {
	// Get reports found=false on a miss, err is reserved for store failures.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
	Close() error
}

// InitStore builds the store selected by CACHE_DRIVER
func InitStore(ctx context.Context, config *utils.Config, log *zap.Logger) (Store, error) {
	switch config.Cache.Driver {
	case utils.CacheDriverRedis:
		store := NewRedisStore(config.Redis)
		if err := store.Ping(ctx); err != nil {
			store.Close()
			return nil, fmt.Errorf("ping redis %s:%s: %w", config.Redis.Host, config.Redis.Port, err)
		}
		log.Info("Cache store ready", zap.String("driver", "redis"))
		return store, nil
	case utils.CacheDriverMemory:
		log.Info("Cache store ready",
			zap.String("driver", "memory"),
			zap.Int("capacity", config.Cache.Capacity),
		)
		return NewMemoryStore(config.Cache.Capacity, config.Cache.TTL), nil
	default:
		return nil, fmt.Errorf("unknown cache driver %q", config.Cache.Driver)
	}
}
