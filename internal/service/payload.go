package service

import (
	"encoding/json"
	"time"

	"marsad/backend/internal/cache"
)

// cachedPayload is the read-through path every feed service uses: return
// the stored payload on a hit, otherwise compute, marshal, store, return.
// Concurrent misses race and the last writer wins; computation is
// idempotent so the redundant work is accepted instead of a lock.
func cachedPayload(c cache.Cache, key string, ttl time.Duration, compute func() (any, error)) ([]byte, error) {
	if b, ok := c.Get(key); ok {
		return b, nil
	}

	payload, err := compute()
	if err != nil {
		return nil, err
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	c.Set(key, b, ttl)
	return b, nil
}

// applyFallback fills a bilingual field that resolved to nothing in every
// language with the feed's fallback string. A field that resolved in one
// language keeps its empty counterpart untouched.
func applyFallback(t *LocalizedText, fallback string) {
	if t == nil || !t.Empty() {
		return
	}
	t.En = fallback
}
