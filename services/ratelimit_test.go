package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRateLimiterWindow(t *testing.T) {
	ctx := context.Background()
	limiter := newMemoryRateLimiter(3, time.Hour)

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "user@example.com")
		require.NoError(t, err)
		assert.True(t, allowed)
		require.NoError(t, limiter.Record(ctx, "user@example.com"))
	}

	allowed, err := limiter.Allow(ctx, "user@example.com")
	require.NoError(t, err)
	assert.False(t, allowed)

	// Other identifiers have their own windows.
	allowed, err = limiter.Allow(ctx, "other@example.com")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryRateLimiterExpiry(t *testing.T) {
	ctx := context.Background()
	limiter := newMemoryRateLimiter(1, 20*time.Millisecond)

	require.NoError(t, limiter.Record(ctx, "user@example.com"))

	allowed, err := limiter.Allow(ctx, "user@example.com")
	require.NoError(t, err)
	assert.False(t, allowed)

	time.Sleep(30 * time.Millisecond)

	allowed, err = limiter.Allow(ctx, "user@example.com")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryRateLimiterClear(t *testing.T) {
	ctx := context.Background()
	limiter := newMemoryRateLimiter(1, time.Hour)

	require.NoError(t, limiter.Record(ctx, "user@example.com"))

	allowed, err := limiter.Allow(ctx, "user@example.com")
	require.NoError(t, err)
	assert.False(t, allowed)

	require.NoError(t, limiter.Clear(ctx, "user@example.com"))

	allowed, err = limiter.Allow(ctx, "user@example.com")
	require.NoError(t, err)
	assert.True(t, allowed)
}
