// Copyright (c) 2026 Padrocha. All rights reserved.
// Author: contact@padrocha.dev

package like

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/padrocha/blog-api/internal/platform/constants"
)

// RedisCountCache implements [CountCache] over Redis with a bounded TTL.
type RedisCountCache struct {
	client *redis.Client
}

// NewRedisCountCache creates a new Redis-backed like-count cache.
func NewRedisCountCache(client *redis.Client) *RedisCountCache {
	return &RedisCountCache{client: client}
}

// Get returns the cached counter, with ok=false on a cache miss.
func (cache *RedisCountCache) Get(ctx context.Context, postID string) (int64, bool, error) {
	key := constants.RedisPrefixLikeCount + postID

	raw, err := cache.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("redis_like_count_get_failed: %w", err)
	}

	count, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// A corrupt value is treated as a miss; the next Set repairs it.
		return 0, false, nil
	}
	return count, true, nil
}

// Set stores the counter under [constants.LikeCountTTL].
func (cache *RedisCountCache) Set(ctx context.Context, postID string, count int64) error {
	key := constants.RedisPrefixLikeCount + postID

	if err := cache.client.Set(ctx, key, count, constants.LikeCountTTL).Err(); err != nil {
		return fmt.Errorf("redis_like_count_set_failed: %w", err)
	}
	return nil
}

// Invalidate drops the cached counter after a toggle changes the truth.
func (cache *RedisCountCache) Invalidate(ctx context.Context, postID string) error {
	key := constants.RedisPrefixLikeCount + postID

	if err := cache.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis_like_count_invalidate_failed: %w", err)
	}
	return nil
}
