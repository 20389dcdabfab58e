package cache

import (
	"context"
	"time"
)

// NoopResponseCache satisfies ResponseCacheService when caching is disabled
// or no Redis backend is reachable. Every operation is a successful no-op.
type NoopResponseCache struct{}

// NewNoopResponseCache creates a NoopResponseCache.
func NewNoopResponseCache() *NoopResponseCache {
	return &NoopResponseCache{}
}

func (*NoopResponseCache) Get(context.Context, string) (string, error) { return "", nil }

func (*NoopResponseCache) Set(context.Context, string, string, time.Duration) error { return nil }

func (*NoopResponseCache) Remove(context.Context, string) error { return nil }
