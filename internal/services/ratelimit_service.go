package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/OOlexandr/Contacts/domain"
)

// RateLimiterImpl implements domain.RateLimiter with a Redis-backed
// fixed window counter
type RateLimiterImpl struct {
	redisClient *redis.Client
	config      RateLimitConfig
}

type RateLimitConfig struct {
	Limit  int
	Window time.Duration
}

// NewRateLimiter creates a new Redis-based rate limiter
func NewRateLimiter(redisClient *redis.Client, config RateLimitConfig) domain.RateLimiter {
	return &RateLimiterImpl{
		redisClient: redisClient,
		config:      config,
	}
}

// Allow implements domain.RateLimiter. The first call in a window creates
// the counter with a TTL; once the counter passes the limit, callers are
// told how long until the window resets.
func (s *RateLimiterImpl) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	counterKey := fmt.Sprintf("ratelimit:%s", key)

	count, err := s.redisClient.Incr(ctx, counterKey).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to increment counter: %w", err)
	}

	if count == 1 {
		if err := s.redisClient.Expire(ctx, counterKey, s.config.Window).Err(); err != nil {
			return false, 0, fmt.Errorf("failed to set window expiry: %w", err)
		}
	}

	if count > int64(s.config.Limit) {
		ttl, err := s.redisClient.TTL(ctx, counterKey).Result()
		if err != nil {
			return false, 0, fmt.Errorf("failed to check window TTL: %w", err)
		}
		if ttl < 0 {
			ttl = s.config.Window
		}
		return false, ttl, nil
	}

	return true, 0, nil
}
