package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/skillpath/institute-api/utils/cache"
	"github.com/skillpath/institute-api/utils/response"
)

// RateLimiter applies a fixed-window per-IP limit backed by Redis. It guards
// the public enquiry form, which is the only unauthenticated write path.
type RateLimiter struct {
	redisCache *cache.RedisCache
	limit      int64
	window     time.Duration
}

// NewRateLimiter creates a rate limiter; redisCache may be nil, in which
// case the limiter is disabled
func NewRateLimiter(redisCache *cache.RedisCache, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		redisCache: redisCache,
		limit:      int64(limit),
		window:     window,
	}
}

// Limit is the middleware. When Redis is unreachable the request is allowed
// through: the limiter must not block legitimate submissions because of a
// cache outage.
func (l *RateLimiter) Limit(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if l.redisCache == nil {
			return c.Next()
		}

		ctx := c.Context()
		key := fmt.Sprintf("ratelimit:%s:%s", name, c.IP())

		count, err := l.redisCache.Increment(ctx, key)
		if err != nil {
			return c.Next()
		}
		if count == 1 {
			l.redisCache.Expire(ctx, key, l.window)
		}

		if count > l.limit {
			ttl, _ := l.redisCache.TTL(ctx, key)
			retryAfter := int(ttl.Seconds())
			if retryAfter < 0 {
				retryAfter = int(l.window.Seconds())
			}
			c.Set("Retry-After", fmt.Sprintf("%d", retryAfter))
			return response.TooManyRequests(c,
				fmt.Sprintf("Too many requests. Try again in %d seconds", retryAfter))
		}

		return c.Next()
	}
}
