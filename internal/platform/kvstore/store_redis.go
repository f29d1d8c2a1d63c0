// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements [Store] on top of a go-redis client.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an already connected client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

/*
Get returns the value stored under key.

Returns:
  - string: The stored value
  - error: [ErrNotFound] if the key is absent or expired, connectivity errors otherwise
*/
func (store *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := store.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("redis_kv_get_failed: %w", err)
	}
	return value, nil
}

// Set stores value under key. A zero ttl keeps the key until deleted.
func (store *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := store.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis_kv_set_failed: %w", err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (store *RedisStore) Delete(ctx context.Context, key string) error {
	if err := store.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis_kv_delete_failed: %w", err)
	}
	return nil
}
