package location

import (
	"context"
	"sync"
	"time"
)

// maxFixAge is how long a cached fix stays acceptable before a fresh lookup
// is forced.
const maxFixAge = 10 * time.Minute

// CachedProvider serves a recent fix without re-querying the inner
// provider. Safe for concurrent use.
type CachedProvider struct {
	inner  Provider
	now    func() time.Time
	fix    Fix
	maxAge time.Duration
	hasFix bool
	mu     sync.RWMutex
}

// NewCachedProvider wraps a provider with fix caching.
func NewCachedProvider(inner Provider) *CachedProvider {
	return &CachedProvider{
		inner:  inner,
		maxAge: maxFixAge,
		now:    time.Now,
	}
}

// Current returns the cached fix when it is fresh enough, otherwise asks
// the inner provider. A failed refresh does not evict a stale-but-present
// fix; the error is returned and the caller decides.
func (c *CachedProvider) Current(ctx context.Context) (Fix, error) {
	c.mu.RLock()
	if c.hasFix && c.now().Sub(c.fix.Timestamp) < c.maxAge {
		fix := c.fix
		c.mu.RUnlock()
		return fix, nil
	}
	c.mu.RUnlock()

	fix, err := c.inner.Current(ctx)
	if err != nil {
		return Fix{}, err
	}

	c.mu.Lock()
	c.fix = fix
	c.hasFix = true
	c.mu.Unlock()

	return fix, nil
}
