// Package cache provides the payload cache port for composed feeds and an
// in-process implementation with fixed-TTL expiry.
package cache

import (
	"strings"
	"sync"
	"time"
)

// Cache stores marshaled feed payloads. Implementations must be safe for
// concurrent use; concurrent writers to the same key are last-writer-wins.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
}

// Key builds a deterministic cache key from a feed name and its
// parameters, e.g. Key("testimonials", "page=2", "per=5").
func Key(feed string, params ...string) string {
	parts := make([]string, 0, len(params)+2)
	parts = append(parts, "feed", feed)
	parts = append(parts, params...)
	return strings.Join(parts, ":")
}

type entry struct {
	value    []byte
	expireAt time.Time
}

// Memory is a mutex-guarded map cache. Expired entries are dropped lazily
// on Get; there is no background sweeper.
type Memory struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (m *Memory) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	if m.now().After(e.expireAt) {
		delete(m.entries, key)
		return nil, false
	}
	return e.value, true
}

func (m *Memory) Set(key string, value []byte, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = entry{
		value:    value,
		expireAt: m.now().Add(ttl),
	}
}
