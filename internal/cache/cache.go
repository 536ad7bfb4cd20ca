// Package cache provides a best-effort cache for research results.
// Failures are never fatal: a broken cache degrades to recomputing
// research, not to failing the planning request.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wayfarer-dev/wayfarer/internal/domain"
)

// ResearchCache stores research results keyed by destination and dates.
type ResearchCache interface {
	// Get returns the cached result and true on a hit.
	Get(ctx context.Context, key string) (*domain.ResearchResult, bool)

	// Set stores the result. Errors are swallowed.
	Set(ctx context.Context, key string, result *domain.ResearchResult)
}

// Key builds the cache key for one research request.
func Key(destination string, start, end time.Time) string {
	return fmt.Sprintf("research:%s:%s:%s",
		destination, start.Format(domain.DateLayout), end.Format(domain.DateLayout))
}

// RedisCache caches research results in Redis with a TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to the given Redis address. A one-hour TTL keeps
// weather and prices reasonably fresh.
func NewRedisCache(addr, password string, db int) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		ttl: time.Hour,
	}
}

func (c *RedisCache) Get(ctx context.Context, key string) (*domain.ResearchResult, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var result domain.ResearchResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, false
	}
	return &result, true
}

func (c *RedisCache) Set(ctx context.Context, key string, result *domain.ResearchResult) {
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	c.client.Set(ctx, key, data, c.ttl)
}

// Ping reports whether the Redis backend is reachable.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Noop is the cache used when no Redis address is configured.
type Noop struct{}

func (Noop) Get(context.Context, string) (*domain.ResearchResult, bool) { return nil, false }

func (Noop) Set(context.Context, string, *domain.ResearchResult) {}
