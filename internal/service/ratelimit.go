package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CheckAndSetRateLimit takes the cooldown slot for subject/action. A nil
// client disables limiting, which keeps tests and local runs simple.
func CheckAndSetRateLimit(ctx context.Context, rdb *redis.Client, subject, action string, limit time.Duration) (bool, error) {
	if rdb == nil {
		return true, nil
	}

	key := fmt.Sprintf("rate_limit:%s:%s", action, subject)

	wasSet, err := rdb.SetNX(ctx, key, "locked", limit).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check rate limit in redis: %w", err)
	}

	return wasSet, nil
}

func GetRateLimitTTL(ctx context.Context, rdb *redis.Client, subject, action string) (time.Duration, error) {
	if rdb == nil {
		return 0, nil
	}
	key := fmt.Sprintf("rate_limit:%s:%s", action, subject)
	return rdb.TTL(ctx, key).Result()
}

func ClearRateLimit(ctx context.Context, rdb *redis.Client, subject, action string) error {
	if rdb == nil {
		return nil
	}
	key := fmt.Sprintf("rate_limit:%s:%s", action, subject)
	_, err := rdb.Del(ctx, key).Result()
	return err
}
