package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RateLimiter is a fixed-window per-client limiter backed by redis.
type RateLimiter struct {
	rdb      *redis.Client
	limit    int
	interval time.Duration
}

func NewRateLimiter(rdb *redis.Client, limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{rdb: rdb, limit: limit, interval: interval}
}

// GinMiddleware counts requests per client IP in the current window. Redis
// failures do not block requests; the limiter fails open.
func (rl *RateLimiter) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rl.windowKey(c.ClientIP(), time.Now())

		pipe := rl.rdb.Pipeline()
		incr := pipe.Incr(c.Request.Context(), key)
		pipe.Expire(c.Request.Context(), key, rl.interval)
		if _, err := pipe.Exec(c.Request.Context()); err != nil {
			log.Warn().Err(err).Msg("rate limit check failed")
			c.Next()
			return
		}

		if incr.Val() > int64(rl.limit) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// windowKey buckets a client into the current fixed window. Every request in
// the same interval shares one counter key.
func (rl *RateLimiter) windowKey(clientIP string, now time.Time) string {
	return fmt.Sprintf("ratelimit:%s:%d", clientIP, now.Unix()/int64(rl.interval.Seconds()))
}
