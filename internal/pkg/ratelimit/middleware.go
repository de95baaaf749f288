package ratelimit

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amestri/cineshelf/internal/pkg/response"
)

// Middleware rejects requests over the limit with 429, keyed by client IP.
func Middleware(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		if !limiter.Allow(key) {
			c.Header("X-RateLimit-Reset", limiter.GetResetTime(key).Format(time.RFC3339))
			c.Header("Retry-After", "60")
			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Try again later.", "RATE_LIMITED")
			c.Abort()
			return
		}

		c.Next()
	}
}
