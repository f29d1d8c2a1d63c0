// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package kvstore

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// memoryCleanupInterval is how often expired entries are purged.
const memoryCleanupInterval = 5 * time.Minute

// MemoryStore implements [Store] with an in-process expiring cache.
// State is lost on restart and not shared between replicas.
type MemoryStore struct {
	cache *cache.Cache
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cache: cache.New(cache.NoExpiration, memoryCleanupInterval)}
}

// Get returns the value stored under key or [ErrNotFound].
func (store *MemoryStore) Get(_ context.Context, key string) (string, error) {
	value, found := store.cache.Get(key)
	if !found {
		return "", ErrNotFound
	}
	return value.(string), nil
}

// Set stores value under key. A zero ttl keeps the key until deleted.
func (store *MemoryStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	store.cache.Set(key, value, ttl)
	return nil
}

// Delete removes key.
func (store *MemoryStore) Delete(_ context.Context, key string) error {
	store.cache.Delete(key)
	return nil
}
