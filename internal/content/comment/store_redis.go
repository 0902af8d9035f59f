// Copyright (c) 2026 Randfin. All rights reserved.

package comment

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/randfin/randfin/internal/platform/constants"
)

// RedisLikeRegistry implements [LikeRegistry] on a Redis SETNX per
// (comment, client) pair with the dedup window as TTL.
type RedisLikeRegistry struct {
	client *redis.Client
}

func NewRedisLikeRegistry(client *redis.Client) *RedisLikeRegistry {
	return &RedisLikeRegistry{client: client}
}

func (registry *RedisLikeRegistry) Register(context context.Context, commentID, clientKey string) (bool, error) {
	key := fmt.Sprintf("%s%s:%s", constants.RedisPrefixCommentLike, commentID, clientKey)

	first, err := registry.client.SetNX(context, key, 1, constants.CommentLikeWindow).Result()
	if err != nil {
		return false, fmt.Errorf("redis_comment_like_register_failed: %w", err)
	}

	return first, nil
}
