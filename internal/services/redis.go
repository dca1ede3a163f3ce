package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// InitRedis initializes the Redis client. Redis only backs the public
// booking-form rate limiter, so an empty URL leaves it disabled rather
// than failing startup.
func InitRedis(redisURL string) error {
	if redisURL == "" {
		return nil
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	RedisClient = redis.NewClient(opt)

	// Test the connection
	ctx := context.Background()
	_, err = RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return nil
}

// RateExceeded counts a hit against key within a fixed window and
// reports whether the caller went over max.
func RateExceeded(ctx context.Context, key string, max int, window time.Duration) (bool, error) {
	if RedisClient == nil || max <= 0 {
		return false, nil
	}

	count, err := RedisClient.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := RedisClient.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}

	return count > int64(max), nil
}
