package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimiter enforces fixed-window request limits backed by redis.
type RateLimiter struct {
	client *redis.Client
}

func NewRateLimiter(client *redis.Client) *RateLimiter {
	return &RateLimiter{client: client}
}

func (rl *RateLimiter) allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	count, err := rl.client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		rl.client.Expire(ctx, key, window)
	}
	return count <= int64(limit), nil
}

// ByIP limits public endpoints per client address.
func (rl *RateLimiter) ByIP(limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("rate_limit_ip:%s:%s", c.ClientIP(), c.Request.URL.Path)

		allowed, err := rl.allow(c.Request.Context(), key, limit, window)
		if err != nil {
			// redis being down must not take the API with it
			c.Next()
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   "rate limit exceeded",
				"message": fmt.Sprintf("too many requests, limit is %d per %v", limit, window),
			})
			return
		}

		c.Next()
	}
}

// ByUser limits authenticated endpoints per caller. Must run after Auth.
func (rl *RateLimiter) ByUser(limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(ContextUserID)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", userID, c.Request.URL.Path)
		allowed, err := rl.allow(c.Request.Context(), key, limit, window)
		if err != nil {
			c.Next()
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   "rate limit exceeded",
				"message": fmt.Sprintf("too many requests, limit is %d per %v", limit, window),
			})
			return
		}

		c.Next()
	}
}
