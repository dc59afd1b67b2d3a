package selection

import (
	"sync"
	"time"

	"github.com/samacademy/cohortgen/internal/content"
)

// recommendation is a cached tier-2 outcome. A negative outcome (ok=false)
// is cached too, so a history-less context doesn't re-scan on every group.
type recommendation struct {
	combo   content.Combo
	ok      bool
	expires time.Time
}

// ttlCache holds global-recommendation results keyed by task context.
// It is owned by the Selector; there is no package-level cache state.
type ttlCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]recommendation
}

func newTTLCache(ttl time.Duration, now func() time.Time) *ttlCache {
	if now == nil {
		now = time.Now
	}
	return &ttlCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]recommendation),
	}
}

// get returns the cached entry for key if it has not expired.
func (c *ttlCache) get(key string) (recommendation, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return recommendation{}, false
	}
	if c.now().After(e.expires) {
		delete(c.entries, key)
		return recommendation{}, false
	}
	return e, true
}

// put stores an entry under key with the cache's TTL.
func (c *ttlCache) put(key string, combo content.Combo, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = recommendation{
		combo:   combo,
		ok:      ok,
		expires: c.now().Add(c.ttl),
	}
}
