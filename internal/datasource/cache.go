package datasource

import (
	"context"
	"fmt"
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

// CachingStatSource wraps any StatSource with an in-memory TTL cache so a
// slate that lists the same pitcher twice only hits the upstream host once.
type CachingStatSource struct {
	source    StatSource
	cache     *cache.Cache
	ttl       time.Duration
	mu        sync.Mutex
	hitCount  uint64
	missCount uint64
	logger    *logrus.Logger
}

// NewCachingStatSource creates a caching wrapper around source
func NewCachingStatSource(source StatSource, ttl time.Duration, logger *logrus.Logger) *CachingStatSource {
	return &CachingStatSource{
		source: source,
		cache:  cache.New(ttl, ttl*2),
		ttl:    ttl,
		logger: logger,
	}
}

// Name returns the wrapped source's name
func (c *CachingStatSource) Name() string {
	return c.source.Name()
}

// PitcherStats serves from cache when possible, fetching through the wrapped
// source on a miss. Failed fetches are not cached, so a pitcher that was
// unavailable can resolve on a later attempt.
func (c *CachingStatSource) PitcherStats(ctx context.Context, playerURL string, season int) (*PitcherStats, error) {
	playerID, err := ExtractPlayerID(playerURL)
	if err != nil {
		// Let the wrapped source produce its own invalid-URL error.
		return c.source.PitcherStats(ctx, playerURL, season)
	}

	key := cacheKey(playerID, season)
	if cached, found := c.cache.Get(key); found {
		if stats, ok := cached.(*PitcherStats); ok {
			c.recordHit(true)
			return stats, nil
		}
	}
	c.recordHit(false)

	stats, err := c.source.PitcherStats(ctx, playerURL, season)
	if err != nil {
		return nil, err
	}

	c.cache.Set(key, stats, c.ttl)
	return stats, nil
}

// Stats returns cache hit/miss counters for diagnostics.
func (c *CachingStatSource) Stats() (hits, misses uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hitCount, c.missCount
}

func (c *CachingStatSource) recordHit(hit bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if hit {
		c.hitCount++
	} else {
		c.missCount++
	}
	if c.logger != nil {
		c.logger.WithFields(logrus.Fields{
			"hits":   c.hitCount,
			"misses": c.missCount,
		}).Debug("Stat cache lookup")
	}
}

func cacheKey(playerID string, season int) string {
	return fmt.Sprintf("%s:%d", playerID, season)
}
