package config

import (
	"context"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()
var RedisClient *redis.Client

// ConnectRedis initializes the Redis client backing the submit rate
// limiter. The limiter is skipped entirely when Redis is not configured.
func ConnectRedis() error {
	addr := os.Getenv("REDIS_ADDRESS")
	if addr == "" {
		return fmt.Errorf("REDIS_ADDRESS is not set")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0, // default DB
	})

	if _, err := client.Ping(Ctx).Result(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	RedisClient = client
	return nil
}
