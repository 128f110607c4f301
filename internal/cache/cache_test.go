package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestKey_Deterministic(t *testing.T) {
	require.Equal(t, "feed:home", Key("home"))
	require.Equal(t, "feed:testimonials:page=2:per=5", Key("testimonials", "page=2", "per=5"))
	require.Equal(t, Key("home"), Key("home"))
}

func TestMemory_GetMissingKey(t *testing.T) {
	m := NewMemory()

	_, ok := m.Get("feed:home")
	require.False(t, ok)
}

func TestMemory_HitWithinTTLReturnsStoredValue(t *testing.T) {
	m := NewMemory()

	m.Set("feed:home", []byte(`{"sections":[]}`), time.Minute)

	// The stored payload is returned unchanged even if the underlying
	// source has moved on; only expiry invalidates.
	got, ok := m.Get("feed:home")
	require.True(t, ok)
	require.Equal(t, []byte(`{"sections":[]}`), got)
}

func TestMemory_ExpiryDropsEntry(t *testing.T) {
	m := NewMemory()

	current := time.Unix(1000, 0)
	m.now = func() time.Time { return current }

	m.Set("feed:home", []byte("payload"), 30*time.Second)

	current = current.Add(29 * time.Second)
	_, ok := m.Get("feed:home")
	require.True(t, ok)

	current = current.Add(2 * time.Second)
	_, ok = m.Get("feed:home")
	require.False(t, ok)

	// Expired entries are removed, not resurrected.
	current = time.Unix(1000, 0)
	m.mu.Lock()
	_, present := m.entries["feed:home"]
	m.mu.Unlock()
	require.False(t, present)
}

func TestMemory_LastWriterWins(t *testing.T) {
	m := NewMemory()

	m.Set("feed:home", []byte("first"), time.Minute)
	m.Set("feed:home", []byte("second"), time.Minute)

	got, ok := m.Get("feed:home")
	require.True(t, ok)
	require.Equal(t, []byte("second"), got)
}
