package revocation

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func newTestMemoryStore(t *testing.T) (*MemoryStore, *manualClock) {
	t.Helper()

	clock := &manualClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := NewMemoryStore(time.Hour)
	store.now = clock.Now
	t.Cleanup(func() { _ = store.Close() })

	return store, clock
}

func TestMemoryStore_RevokeAndExpire(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestMemoryStore(t)

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "jti-1", 10*time.Minute))

	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	clock.Advance(10 * time.Minute)

	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestMemoryStore_NonPositiveTTLIsNoop(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestMemoryStore(t)

	require.NoError(t, store.Revoke(ctx, "expired", 0))
	require.NoError(t, store.Revoke(ctx, "negative", -time.Second))

	assert.Equal(t, 0, store.Len())
}

func TestMemoryStore_RevokeKeepsLongestExpiry(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestMemoryStore(t)

	require.NoError(t, store.Revoke(ctx, "jti", time.Hour))
	require.NoError(t, store.Revoke(ctx, "jti", time.Minute))

	clock.Advance(30 * time.Minute)

	revoked, err := store.IsRevoked(ctx, "jti")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestMemoryStore_Sweep(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestMemoryStore(t)

	require.NoError(t, store.Revoke(ctx, "short", time.Minute))
	require.NoError(t, store.Revoke(ctx, "long", time.Hour))
	assert.Equal(t, 2, store.Len())

	clock.Advance(2 * time.Minute)
	store.Sweep()

	assert.Equal(t, 1, store.Len())
	revoked, err := store.IsRevoked(ctx, "long")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestMemoryStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("jti-%d", i)
			assert.NoError(t, store.Revoke(ctx, id, time.Hour))
			revoked, err := store.IsRevoked(ctx, id)
			assert.NoError(t, err)
			assert.True(t, revoked)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, store.Len())
}

func TestMemoryStore_CloseIsIdempotent(t *testing.T) {
	store := NewMemoryStore(time.Millisecond)

	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}
