package middlewares

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RateWindow is the period a uid's report count covers.
const RateWindow = 24 * time.Hour

// RateCounter counts hits for a key within a fixed window.
type RateCounter interface {
	// Hit increments key and returns the new count and the time left in
	// the window.
	Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// RedisCounter keeps counts in Redis as INCR keys that expire with the
// window.
type RedisCounter struct {
	client redis.Cmdable
	prefix string
}

func NewRedisCounter(client redis.Cmdable, prefix string) *RedisCounter {
	return &RedisCounter{client: client, prefix: prefix}
}

func (r *RedisCounter) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	userKey := r.prefix + ":" + key

	count, err := r.client.Incr(ctx, userKey).Result()
	if err != nil {
		return 0, 0, err
	}

	// Only the first hit opens the window.
	if count == 1 {
		if err := r.client.Expire(ctx, userKey, window).Err(); err != nil {
			return 0, 0, err
		}
		return count, window, nil
	}

	ttl, err := r.client.TTL(ctx, userKey).Result()
	if err != nil {
		return 0, 0, err
	}
	return count, ttl, nil
}

// ReportRateLimiter caps reports per uid per RateWindow. It must run after
// AuthMiddleware.
func ReportRateLimiter(counter RateCounter, limit int, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := UID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			c.Abort()
			return
		}

		count, retryAfter, err := counter.Hit(c.Request.Context(), uid, RateWindow)
		if err != nil {
			log.Error().Err(err).Str("uid", uid).Msg("rate limiter counter failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "rate limiter unavailable"})
			c.Abort()
			return
		}

		if count > int64(limit) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": retryAfter.Seconds(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
