package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 2, 6, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func TestTokenBucket_BurstThenDeny(t *testing.T) {
	clock := newFakeClock()
	bucket := newTokenBucket(3, 1, clock.Now())

	for i := 0; i < 3; i++ {
		allowed, remaining, _ := bucket.take(clock.Now())
		assert.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 2-i, remaining)
	}

	allowed, remaining, full := bucket.take(clock.Now())
	assert.False(t, allowed)
	assert.Zero(t, remaining)
	assert.Equal(t, clock.Now().Add(3*time.Second), full)
}

func TestTokenBucket_Refill(t *testing.T) {
	clock := newFakeClock()
	bucket := newTokenBucket(2, 0.5, clock.Now())

	bucket.take(clock.Now())
	bucket.take(clock.Now())
	allowed, _, _ := bucket.take(clock.Now())
	require.False(t, allowed)
	assert.InDelta(t, float64(2*time.Second), float64(bucket.nextToken(clock.Now())), float64(time.Millisecond))

	clock.Advance(2 * time.Second)
	allowed, _, _ = bucket.take(clock.Now())
	assert.True(t, allowed)

	// Refill never exceeds capacity.
	clock.Advance(time.Hour)
	_, remaining, _ := bucket.take(clock.Now())
	assert.Equal(t, 1, remaining)
}

func TestLimiter_DefaultLimit(t *testing.T) {
	clock := newFakeClock()
	limiter := newLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
	}, clock.Now)
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/dataset", "GET")
		require.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 10, info.Limit)
		assert.Equal(t, 9-i, info.Remaining)
	}

	allowed, info := limiter.Allow("127.0.0.1", "/dataset", "GET")
	assert.False(t, allowed)
	assert.Zero(t, info.Remaining)
	assert.InDelta(t, float64(6*time.Second), float64(info.RetryAfter), float64(time.Millisecond))

	// Other clients have their own bucket.
	allowed, _ = limiter.Allow("10.0.0.2", "/dataset", "GET")
	assert.True(t, allowed)
}

func TestLimiter_EndpointTiers(t *testing.T) {
	clock := newFakeClock()
	limiter := newLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(),
	}, clock.Now)
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/scene.png", "POST")
		require.True(t, allowed)
		assert.Equal(t, 60, info.Limit)
	}
	allowed, _ := limiter.Allow("127.0.0.1", "/scene.png", "POST")
	assert.False(t, allowed, "PNG burst is 10")

	allowed, info := limiter.Allow("127.0.0.1", "/scene", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 300, info.Limit)

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("127.0.0.1", "/health", "GET")
		require.True(t, allowed)
	}
}

func TestLimiter_WhitelistAndBlacklist(t *testing.T) {
	limiter := newLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"127.0.0.1": true},
		Blacklist:     map[string]bool{"192.0.2.1": true},
	}, newFakeClock().Now)
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		allowed, _ := limiter.Allow("127.0.0.1", "/dataset", "GET")
		assert.True(t, allowed)
	}

	allowed, _ := limiter.Allow("192.0.2.1", "/dataset", "GET")
	assert.False(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("127.0.0.1", "/scene.png", "POST")
		assert.True(t, allowed)
	}
}

func TestLimiter_CleanupDropsIdleBuckets(t *testing.T) {
	clock := newFakeClock()
	limiter := newLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
	}, clock.Now)
	defer limiter.Stop()

	limiter.Allow("a", "/dataset", "GET")
	clock.Advance(30 * time.Minute)
	limiter.Allow("b", "/dataset", "GET")
	require.Equal(t, 2, limiter.bucketCount())

	clock.Advance(45 * time.Minute)
	limiter.cleanupBuckets()
	assert.Equal(t, 1, limiter.bucketCount())
}

func TestLimiter_StopTwice(t *testing.T) {
	limiter := NewLimiter(nil)
	limiter.Stop()
	assert.NotPanics(t, limiter.Stop)
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	tests := []struct {
		path, method string
		wantPath     string
	}{
		{"/scene.png", "POST", "/scene.png"},
		{"/scene", "POST", "/scene"},
		{"/snapshots", "GET", "/snapshots"},
		{"/snapshots/1f0e", "GET", "/snapshots/"},
		{"/health", "GET", "/health"},
		{"/dataset", "GET", ""},
		{"/scene", "GET", ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			if tt.wantPath == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantPath, got.Path)
		})
	}
}

func TestMatchEndpoint_LongestPrefix(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/a/", Method: "GET", Limit: 1},
		{Path: "/a/b/", Method: "GET", Limit: 2},
	}
	got := MatchEndpoint("/a/b/c", "GET", configs)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.Limit)
}

func TestDefaultEndpointConfigs(t *testing.T) {
	configs := DefaultEndpointConfigs()

	png := MatchEndpoint("/scene.png", "POST", configs)
	require.NotNil(t, png)
	assert.Equal(t, 60, png.Limit)

	health := MatchEndpoint("/health", "GET", configs)
	require.NotNil(t, health)
	assert.Zero(t, health.Limit)

	snapshot := MatchEndpoint("/snapshots/3f1c", "GET", configs)
	require.NotNil(t, snapshot)
	assert.Equal(t, 120, snapshot.Limit)
}
