// Package geocache memoizes place lookups in front of a domain.PlaceResolver.
package geocache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang/groupcache/lru"
	"golang.org/x/sync/singleflight"

	"github.com/couchcryptid/ascendant-service/internal/domain"
	"github.com/couchcryptid/ascendant-service/internal/observability"
)

// CachedResolver wraps a PlaceResolver with an in-memory LRU cache.
// Concurrent lookups of the same place share one upstream call.
type CachedResolver struct {
	inner       domain.PlaceResolver
	cache       *lruCache
	group       singleflight.Group
	callTimeout time.Duration
	metrics     *observability.Metrics
}

// New creates a cache decorator around a place resolver. callTimeout bounds
// each shared upstream lookup; zero leaves it to the inner resolver.
func New(inner domain.PlaceResolver, maxEntries int, callTimeout time.Duration, metrics *observability.Metrics) *CachedResolver {
	return &CachedResolver{
		inner:       inner,
		cache:       newLRUCache(maxEntries),
		callTimeout: callTimeout,
		metrics:     metrics,
	}
}

// Resolve returns cached coordinates for placeText or asks the inner resolver.
// A caller whose ctx ends stops waiting; the shared lookup keeps running for
// the other callers.
func (c *CachedResolver) Resolve(ctx context.Context, placeText string) (domain.Coordinates, error) {
	key := cacheKey(placeText)
	if coords, ok := c.cache.get(key); ok {
		c.metrics.GeocodeCache.WithLabelValues("hit").Inc()
		return coords, nil
	}
	c.metrics.GeocodeCache.WithLabelValues("miss").Inc()

	ch := c.group.DoChan(key, func() (any, error) {
		return c.lookup(context.WithoutCancel(ctx), key, placeText)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return domain.Coordinates{}, res.Err
		}
		return res.Val.(domain.Coordinates), nil
	case <-ctx.Done():
		return domain.Coordinates{}, fmt.Errorf("%w: %w", domain.ErrGeocodingUnavailable, ctx.Err())
	}
}

func (c *CachedResolver) lookup(ctx context.Context, key, placeText string) (domain.Coordinates, error) {
	if c.callTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.callTimeout)
		defer cancel()
	}

	coords, err := c.inner.Resolve(ctx, placeText)
	if err != nil {
		// Failures are never cached so a transient outage does not stick.
		return coords, err
	}
	c.cache.put(key, coords)
	return coords, nil
}

// cacheKey folds case and whitespace so "  Sofia " and "sofia" share an entry.
func cacheKey(placeText string) string {
	return strings.Join(strings.Fields(strings.ToLower(placeText)), " ")
}

// lruCache guards a groupcache LRU, which is not safe for concurrent use.
type lruCache struct {
	mu  sync.Mutex
	lru *lru.Cache
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{lru: lru.New(maxEntries)}
}

func (c *lruCache) get(key string) (domain.Coordinates, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.lru.Get(key)
	if !ok {
		return domain.Coordinates{}, false
	}
	return v.(domain.Coordinates), true
}

func (c *lruCache) put(key string, value domain.Coordinates) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Add(key, value)
}

func (c *lruCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}
