// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ratelimit limits claim attempts per item and client with a
// Redis-backed fixed window, so the quota is shared by every server instance.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/campus-found/internal/config"
	"github.com/MKhiriev/campus-found/internal/utils"
	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "campus-found:claims"

var fixedWindowScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`)

// ErrInvalidLimiterConfig is returned for non-positive quotas or an empty
// Redis address.
var ErrInvalidLimiterConfig = errors.New("invalid rate limiter config")

// FixedWindowLimiter allows at most limit hits per key in each window.
type FixedWindowLimiter struct {
	limit  int
	window time.Duration

	redisClient *redis.Client
	redisPrefix string
	now         func() time.Time
}

// NewClaimAttemptLimiter creates a limiter from the Redis storage settings.
func NewClaimAttemptLimiter(cfg config.Redis) (*FixedWindowLimiter, error) {
	if cfg.ClaimAttempts <= 0 || cfg.ClaimWindow <= 0 {
		return nil, fmt.Errorf("%w: limiter requires positive attempts and window", ErrInvalidLimiterConfig)
	}
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, fmt.Errorf("%w: redis addr is required", ErrInvalidLimiterConfig)
	}
	prefix := strings.TrimSpace(cfg.Prefix)
	if prefix == "" {
		prefix = defaultPrefix
	}

	return &FixedWindowLimiter{
		limit:  cfg.ClaimAttempts,
		window: cfg.ClaimWindow,
		redisClient: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: cfg.Password,
		}),
		redisPrefix: prefix,
		now:         time.Now,
	}, nil
}

// Allow counts one hit for key and reports whether it is within quota.
// Keys are hashed before they reach Redis, so raw client addresses are never
// stored.
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		key = "unknown"
	}

	windowMs := l.window.Milliseconds()
	windowSlot := l.now().UTC().UnixMilli() / windowMs
	redisKey := fmt.Sprintf("%s:%s:%d", l.redisPrefix, utils.HashString(key, l.redisPrefix), windowSlot)

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	count, err := fixedWindowScript.Run(ctx, l.redisClient, []string{redisKey}, windowMs).Int64()
	if err != nil {
		return false, fmt.Errorf("rate limiter redis error: %w", err)
	}

	return count <= int64(l.limit), nil
}

// Close releases the Redis connection pool.
func (l *FixedWindowLimiter) Close() error {
	return l.redisClient.Close()
}

// Unlimited allows every attempt. It is used when no Redis is configured.
type Unlimited struct{}

func (Unlimited) Allow(context.Context, string) (bool, error) {
	return true, nil
}

func (Unlimited) Close() error {
	return nil
}
