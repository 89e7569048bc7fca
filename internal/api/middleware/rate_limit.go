package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/seojacky/account-teacher/internal/api/metrics"
	"github.com/seojacky/account-teacher/pkg/redis"
	"github.com/seojacky/account-teacher/pkg/response"
)

// RateLimit applies a Redis sliding window per client IP and route.
// With rdb == nil or a Redis error the request is let through.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || limit <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			metrics.RateLimitedTotal.Inc()
			response.Error(c, http.StatusTooManyRequests, 10004, "Забагато запитів, спробуйте пізніше")
			c.Abort()
			return
		}

		c.Next()
	}
}
