package middlewares

import (
	"net/http"
	"os"
	"time"

	"github.com/Eklavvyaaaaa/CIVIX/config"

	"github.com/gin-gonic/gin"
)

// SubmitRateLimiter caps how many reports a single client may confirm per
// day. There is no authentication in this app, so clients are keyed by IP.
// When Redis is not configured the limiter is a no-op.
func SubmitRateLimiter(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.RedisClient == nil {
			c.Next()
			return
		}

		queuePrefix := os.Getenv("REDIS_QUEUE_FOR_SUBMIT_LIMIT")
		if queuePrefix == "" {
			queuePrefix = "civix:submits"
		}

		// Create individual key for each client
		ctx := config.Ctx
		clientKey := queuePrefix + ":" + c.ClientIP()

		// Increment client's count with TTL
		count, err := config.RedisClient.Incr(ctx, clientKey).Result()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "redis error incrementing count"})
			c.Abort()
			return
		}

		// Set TTL only for the first increment (when count = 1)
		if count == 1 {
			err = config.RedisClient.Expire(ctx, clientKey, 24*time.Hour).Err()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "redis error setting TTL"})
				c.Abort()
				return
			}
		}

		// Check if client exceeded limit
		if count > int64(limit) {
			retryAfter, _ := config.RedisClient.TTL(ctx, clientKey).Result()
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
