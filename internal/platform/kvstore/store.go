// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package kvstore provides the persisted key-value state used across page views.

Anything the browser version of the site kept in local storage (last globe
focus, first-visit flags) or in component state (gallery sessions) is read and
written here explicitly, keyed by visitor or session, instead of living in
process globals.

Implementations:

  - [RedisStore]: shared across API replicas, values expire with a TTL.
  - [MemoryStore]: in-process fallback when no Redis URL is configured.
*/
package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a key is absent or has expired.
var ErrNotFound = errors.New("kvstore: key not found")

// Store is the minimal key-value contract the domain packages depend on.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// GetJSON loads key and decodes it into target.
func GetJSON(ctx context.Context, store Store, key string, target any) error {
	raw, err := store.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		return fmt.Errorf("kvstore: decode %q: %w", key, err)
	}
	return nil
}

// SetJSON encodes value and stores it under key.
func SetJSON(ctx context.Context, store Store, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kvstore: encode %q: %w", key, err)
	}
	return store.Set(ctx, key, string(raw), ttl)
}
