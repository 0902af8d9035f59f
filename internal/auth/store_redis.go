// Copyright (c) 2026 Randfin. All rights reserved.

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/randfin/randfin/internal/platform/apperr"
	"github.com/randfin/randfin/internal/platform/constants"
)

// RedisSessionRepository implements [SessionRepository] on Redis with the
// refresh TTL as key expiry, so stale sessions clean themselves up.
type RedisSessionRepository struct {
	client *redis.Client
}

func NewRedisSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

func (repository *RedisSessionRepository) Set(context context.Context, token, userID string, ttl time.Duration) error {
	key := constants.RedisPrefixSession + token

	if err := repository.client.Set(context, key, userID, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_set_failed: %w", err)
	}
	return nil
}

func (repository *RedisSessionRepository) Get(context context.Context, token string) (string, error) {
	key := constants.RedisPrefixSession + token

	userID, err := repository.client.Get(context, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperr.Unauthorized("Session is invalid or expired")
		}
		return "", fmt.Errorf("redis_session_get_failed: %w", err)
	}

	return userID, nil
}

func (repository *RedisSessionRepository) Delete(context context.Context, token string) error {
	key := constants.RedisPrefixSession + token

	if err := repository.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}
	return nil
}
