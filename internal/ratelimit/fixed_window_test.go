// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/campus-found/internal/config"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, attempts int) (*FixedWindowLimiter, *miniredis.Miniredis) {
	t.Helper()
	redis := miniredis.RunT(t)
	limiter, err := NewClaimAttemptLimiter(config.Redis{
		Addr:          redis.Addr(),
		Prefix:        "test:claims",
		ClaimAttempts: attempts,
		ClaimWindow:   time.Minute,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = limiter.Close() })
	return limiter, redis
}

func TestFixedWindowLimiter_BlocksAfterQuota(t *testing.T) {
	limiter, _ := newTestLimiter(t, 2)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := limiter.Allow(ctx, "1:10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok, "attempt %d should pass", i+1)
	}

	ok, err := limiter.Allow(ctx, "1:10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok, "third attempt should be blocked")

	// another item or client has its own quota
	ok, err = limiter.Allow(ctx, "2:10.0.0.1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFixedWindowLimiter_NewWindowResetsQuota(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1)
	ctx := context.Background()

	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	ok, err := limiter.Allow(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = limiter.Allow(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	now = now.Add(time.Minute)
	ok, err = limiter.Allow(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFixedWindowLimiter_KeysAreHashedAndExpire(t *testing.T) {
	limiter, redis := newTestLimiter(t, 5)

	_, err := limiter.Allow(context.Background(), "1:10.0.0.1")
	require.NoError(t, err)

	keys := redis.Keys()
	require.Len(t, keys, 1)
	assert.NotContains(t, keys[0], "10.0.0.1")
	assert.Contains(t, keys[0], "test:claims:")
	assert.Greater(t, redis.TTL(keys[0]), time.Duration(0))
}

func TestFixedWindowLimiter_RedisErrorIsReported(t *testing.T) {
	limiter, redis := newTestLimiter(t, 1)
	redis.Close()

	ok, err := limiter.Allow(context.Background(), "k")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestNewClaimAttemptLimiter_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Redis
	}{
		{name: "empty addr", cfg: config.Redis{ClaimAttempts: 1, ClaimWindow: time.Second}},
		{name: "zero attempts", cfg: config.Redis{Addr: "localhost:6379", ClaimWindow: time.Second}},
		{name: "zero window", cfg: config.Redis{Addr: "localhost:6379", ClaimAttempts: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter, err := NewClaimAttemptLimiter(tt.cfg)
			assert.ErrorIs(t, err, ErrInvalidLimiterConfig)
			assert.Nil(t, limiter)
		})
	}
}

func TestUnlimited_AlwaysAllows(t *testing.T) {
	ok, err := Unlimited{}.Allow(context.Background(), "anything")
	require.NoError(t, err)
	assert.True(t, ok)
}
