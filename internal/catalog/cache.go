package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"haat/browse/internal/domain"
)

// Cached wraps a Service with a TTL cache so that bouncing between the two
// screens (markets grid ↔ market detail) within a short window doesn't
// re-fetch the same catalog. The cache is tiny — one entry per market plus
// one per lazily-deepened category — but still bounded to keep long
// sessions flat.
type Cached struct {
	inner Service
	ttl   time.Duration

	mu    sync.Mutex
	cache map[string]cacheEntry
}

const maxCacheEntries = 64

type cacheEntry struct {
	val    any
	err    error
	expiry time.Time
}

// Compile-time check.
var _ Service = (*Cached)(nil)

// NewCached wraps an existing Service with a TTL cache. A TTL of a minute
// or two works well: long enough to cover screen switches, short enough
// that prices don't go stale.
func NewCached(inner Service, ttl time.Duration) *Cached {
	return &Cached{
		inner: inner,
		ttl:   ttl,
		cache: make(map[string]cacheEntry, 8),
	}
}

// Invalidate clears all cached entries.
func (c *Cached) Invalidate() {
	c.mu.Lock()
	c.cache = make(map[string]cacheEntry, 8)
	c.mu.Unlock()
}

// FetchMarket returns the cached market when fresh, delegating otherwise.
// Errors are cached too — a dead backend shouldn't be re-hit on every
// keystroke; the TTL bounds how long the failure sticks.
func (c *Cached) FetchMarket(ctx context.Context, marketID int) (*domain.Market, error) {
	key := fmt.Sprintf("market/%d", marketID)
	if v, ok, err := c.get(key); ok {
		if err != nil {
			return nil, err
		}
		return v.(*domain.Market), nil
	}
	v, err := c.inner.FetchMarket(ctx, marketID)
	c.set(key, v, err)
	return v, err
}

// FetchCategory returns the cached category when fresh, delegating otherwise.
func (c *Cached) FetchCategory(ctx context.Context, marketID, categoryID int) (*domain.Category, error) {
	key := fmt.Sprintf("category/%d/%d", marketID, categoryID)
	if v, ok, err := c.get(key); ok {
		if err != nil {
			return nil, err
		}
		return v.(*domain.Category), nil
	}
	v, err := c.inner.FetchCategory(ctx, marketID, categoryID)
	c.set(key, v, err)
	return v, err
}

func (c *Cached) get(key string) (val any, ok bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, found := c.cache[key]
	if !found || time.Now().After(e.expiry) {
		return nil, false, nil
	}
	return e.val, true, e.err
}

func (c *Cached) set(key string, val any, err error) {
	c.mu.Lock()
	if len(c.cache) >= maxCacheEntries {
		now := time.Now()
		for k, e := range c.cache {
			if now.After(e.expiry) {
				delete(c.cache, k)
			}
		}
		if len(c.cache) >= maxCacheEntries {
			c.cache = make(map[string]cacheEntry, 8)
		}
	}
	c.cache[key] = cacheEntry{val: val, err: err, expiry: time.Now().Add(c.ttl)}
	c.mu.Unlock()
}
