package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLimiter returns a limiter with a controllable clock.
func newTestLimiter(limit int, window time.Duration) (*FixedWindow, *time.Time) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l := NewFixedWindow(limit, window)
	l.now = func() time.Time { return current }
	return l, &current
}

func TestFixedWindow_LimitWithinWindow(t *testing.T) {
	l, _ := newTestLimiter(5, time.Hour)

	for i := 1; i <= 5; i++ {
		assert.True(t, l.Allow("1.2.3.4"), "request %d should be allowed", i)
	}
	assert.False(t, l.Allow("1.2.3.4"), "6th request should be denied")
	assert.False(t, l.Allow("1.2.3.4"), "denied requests must not consume slots")
}

func TestFixedWindow_KeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(2, time.Hour)

	require.True(t, l.Allow("a"))
	require.True(t, l.Allow("a"))
	require.False(t, l.Allow("a"))
	assert.True(t, l.Allow("b"), "other keys are unaffected")
}

func TestFixedWindow_WindowElapses(t *testing.T) {
	l, clock := newTestLimiter(5, time.Hour)

	for i := 0; i < 5; i++ {
		require.True(t, l.Allow("1.2.3.4"))
	}
	require.False(t, l.Allow("1.2.3.4"))

	// Just before reset the key is still blocked.
	*clock = clock.Add(time.Hour - time.Second)
	assert.False(t, l.Allow("1.2.3.4"))

	// At the reset boundary a fresh window starts.
	*clock = clock.Add(time.Second)
	for i := 1; i <= 5; i++ {
		assert.True(t, l.Allow("1.2.3.4"), "request %d after reset should be allowed", i)
	}
	assert.False(t, l.Allow("1.2.3.4"))
}

func TestFixedWindow_SweepBoundsMemory(t *testing.T) {
	l, clock := newTestLimiter(1, time.Hour)

	for i := 0; i < maxTrackedKeys; i++ {
		require.True(t, l.Allow(fmt.Sprintf("key-%d", i)))
	}
	require.Len(t, l.windows, maxTrackedKeys)

	// All windows expire; the next new key triggers a sweep instead of growth.
	*clock = clock.Add(2 * time.Hour)
	require.True(t, l.Allow("fresh"))
	assert.Len(t, l.windows, 1)
}

func TestFixedWindow_ConcurrentAllow(t *testing.T) {
	l := NewFixedWindow(50, time.Hour)

	var wg sync.WaitGroup
	allowed := make(chan bool, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			allowed <- l.Allow("shared")
		}()
	}
	wg.Wait()
	close(allowed)

	count := 0
	for ok := range allowed {
		if ok {
			count++
		}
	}
	assert.Equal(t, 50, count, "exactly limit requests may pass, with no lost updates")
}
