package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"souq-api/config"

	"github.com/redis/go-redis/v9"
)

// RateLimiter tracks OTP requests per email over a sliding window.
type RateLimiter interface {
	// Allow reports whether another OTP may be issued for the identifier.
	Allow(ctx context.Context, identifier string) (bool, error)
	// Record registers an issued OTP against the identifier's window.
	Record(ctx context.Context, identifier string) error
	// Clear drops the identifier's window, e.g. after successful verification.
	Clear(ctx context.Context, identifier string) error
}

// NewRateLimiter returns the Redis-backed limiter when Redis is up, and an
// in-process fallback otherwise so OTP issuance stays throttled either way.
func NewRateLimiter() RateLimiter {
	max := config.AppConfig.OTPMaxRequests
	window := time.Duration(config.AppConfig.OTPWindowMinutes) * time.Minute

	if config.RedisClient != nil {
		return &redisRateLimiter{client: config.RedisClient, max: max, window: window}
	}
	return newMemoryRateLimiter(max, window)
}

const otpRateKeyPrefix = "otp:ratelimit:"

// redisRateLimiter keeps one sorted set per email, scored by request
// timestamp, and trims entries older than the window before counting.
type redisRateLimiter struct {
	client *redis.Client
	max    int
	window time.Duration
}

func (r *redisRateLimiter) key(identifier string) string {
	return otpRateKeyPrefix + identifier
}

func (r *redisRateLimiter) Allow(ctx context.Context, identifier string) (bool, error) {
	key := r.key(identifier)
	cutoff := time.Now().Add(-r.window).UnixMilli()

	if err := r.client.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", cutoff)).Err(); err != nil {
		return false, err
	}

	count, err := r.client.ZCard(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return count < int64(r.max), nil
}

func (r *redisRateLimiter) Record(ctx context.Context, identifier string) error {
	key := r.key(identifier)
	now := time.Now().UnixMilli()

	if err := r.client.ZAdd(ctx, key, redis.Z{
		Score:  float64(now),
		Member: fmt.Sprintf("%d", now),
	}).Err(); err != nil {
		return err
	}
	return r.client.Expire(ctx, key, r.window).Err()
}

func (r *redisRateLimiter) Clear(ctx context.Context, identifier string) error {
	return r.client.Del(ctx, r.key(identifier)).Err()
}

type memoryRateLimiter struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	entries map[string][]time.Time
}

func newMemoryRateLimiter(max int, window time.Duration) *memoryRateLimiter {
	return &memoryRateLimiter{
		max:     max,
		window:  window,
		entries: make(map[string][]time.Time),
	}
}

func (m *memoryRateLimiter) prune(identifier string, now time.Time) []time.Time {
	cutoff := now.Add(-m.window)
	kept := m.entries[identifier][:0]
	for _, t := range m.entries[identifier] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		delete(m.entries, identifier)
		return nil
	}
	m.entries[identifier] = kept
	return kept
}

func (m *memoryRateLimiter) Allow(ctx context.Context, identifier string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prune(identifier, time.Now())) < m.max, nil
}

func (m *memoryRateLimiter) Record(ctx context.Context, identifier string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	m.entries[identifier] = append(m.prune(identifier, now), now)
	return nil
}

func (m *memoryRateLimiter) Clear(ctx context.Context, identifier string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, identifier)
	return nil
}
