package progression

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/DoughGuardian_Go/internal/engine"
	"github.com/osse101/DoughGuardian_Go/internal/metrics"
)

// session is one player's live engine. All access happens under the
// player's lock except the dirty and discarded flags, which the eviction
// callback may read from the cache's own goroutine. accruedUntil is the
// wall time the engine has been credited up to.
type session struct {
	engine       *engine.Engine
	accruedUntil time.Time
	dirty        atomic.Bool
	discarded    atomic.Bool
}

// sessionCache keeps live sessions in an expirable LRU. Evicted sessions
// are parked in pending until the flusher saves them under the player lock,
// and a lookup that misses the LRU reclaims a parked session before falling
// back to the store.
type sessionCache struct {
	lru *expirable.LRU[string, *session]

	mu      sync.Mutex
	pending map[string]*session
	notify  chan struct{}
}

func newSessionCache(size int, ttl time.Duration) *sessionCache {
	c := &sessionCache{
		pending: make(map[string]*session),
		notify:  make(chan struct{}, 1),
	}
	c.lru = expirable.NewLRU[string, *session](size, c.onEvict, ttl)
	return c
}

// onEvict runs with the LRU's lock held and must not call back into it
func (c *sessionCache) onEvict(playerID string, s *session) {
	if s.discarded.Load() {
		return
	}

	c.mu.Lock()
	c.pending[playerID] = s
	c.mu.Unlock()

	select {
	case c.notify <- struct{}{}:
	default:
	}
}

// park holds a session for a later save attempt unless a newer one is
// already parked or live
func (c *sessionCache) park(playerID string, s *session) {
	if c.lru.Contains(playerID) {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.pending[playerID]; !ok {
		c.pending[playerID] = s
	}
}

// get returns the live session, reclaiming a parked one. Callers hold the
// player lock.
func (c *sessionCache) get(playerID string) (*session, bool) {
	if s, ok := c.lru.Get(playerID); ok {
		return s, true
	}

	c.mu.Lock()
	s, ok := c.pending[playerID]
	delete(c.pending, playerID)
	c.mu.Unlock()

	if ok {
		c.add(playerID, s)
	}
	return s, ok
}

// peek returns a live session without touching recency
func (c *sessionCache) peek(playerID string) (*session, bool) {
	return c.lru.Peek(playerID)
}

func (c *sessionCache) add(playerID string, s *session) {
	c.lru.Add(playerID, s)
	metrics.ActiveSessions.Set(float64(c.lru.Len()))
}

// discard drops a player's session without saving it
func (c *sessionCache) discard(playerID string) {
	if s, ok := c.lru.Peek(playerID); ok {
		s.discarded.Store(true)
	}
	c.lru.Remove(playerID)
	metrics.ActiveSessions.Set(float64(c.lru.Len()))

	c.mu.Lock()
	delete(c.pending, playerID)
	c.mu.Unlock()
}

// takePending removes a parked session if it is still the one given
func (c *sessionCache) takePending(playerID string, s *session) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending[playerID] != s {
		return false
	}
	delete(c.pending, playerID)
	return true
}

func (c *sessionCache) pendingSnapshot() map[string]*session {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]*session, len(c.pending))
	for id, s := range c.pending {
		out[id] = s
	}
	return out
}

func (c *sessionCache) keys() []string {
	return c.lru.Keys()
}

func (c *sessionCache) len() int {
	return c.lru.Len()
}
