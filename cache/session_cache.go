// Package cache holds the in-process session-validation cache. It only
// shortcuts repeated token lookups for one process; the document store
// stays the source of truth.
package cache

import (
	"time"

	"github.com/jellydator/ttlcache/v3"

	"go.pilab.hu/partsdesk/domain"
)

// SessionCache caches validated sessions by token with TTL expiry.
type SessionCache struct {
	cache *ttlcache.Cache[string, *domain.Session]
}

// NewSessionCache creates a session cache with automatic cleanup.
func NewSessionCache(ttl time.Duration) *SessionCache {
	c := ttlcache.New(
		ttlcache.WithTTL[string, *domain.Session](ttl),
		ttlcache.WithDisableTouchOnHit[string, *domain.Session](),
	)
	go c.Start()

	return &SessionCache{cache: c}
}

// Put caches a session. The entry never outlives the session's own expiry.
func (c *SessionCache) Put(session *domain.Session) {
	ttl := ttlcache.DefaultTTL
	if !session.ExpiresAt.IsZero() {
		remaining := time.Until(session.ExpiresAt)
		if remaining <= 0 {
			return
		}
		ttl = remaining
	}
	c.cache.Set(session.Token, session, ttl)
}

// Get returns the cached session for a token, or nil.
func (c *SessionCache) Get(token string) *domain.Session {
	item := c.cache.Get(token)
	if item == nil {
		return nil
	}
	return item.Value()
}

// Evict drops the cached entry for a token, if any.
func (c *SessionCache) Evict(token string) {
	c.cache.Delete(token)
}

// Stop halts the background cleanup goroutine.
func (c *SessionCache) Stop() {
	c.cache.Stop()
}
