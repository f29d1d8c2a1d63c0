// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package logs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/kvstore"
)

// KVVisitorStateRepository keeps visitor state in the key-value store.
type KVVisitorStateRepository struct {
	store kvstore.Store
	ttl   time.Duration
}

func NewKVVisitorStateRepository(store kvstore.Store, ttl time.Duration) *KVVisitorStateRepository {
	return &KVVisitorStateRepository{store: store, ttl: ttl}
}

func (repository *KVVisitorStateRepository) LastFocus(context context.Context, visitorID string) (*Focus, error) {
	var focus Focus
	err := kvstore.GetJSON(context, repository.store, constants.KVPrefixGlobeFocus+visitorID, &focus)
	if errors.Is(err, kvstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("logs: load focus: %w", err)
	}
	return &focus, nil
}

func (repository *KVVisitorStateRepository) SaveFocus(context context.Context, visitorID string, focus Focus) error {
	if err := kvstore.SetJSON(context, repository.store, constants.KVPrefixGlobeFocus+visitorID, focus, repository.ttl); err != nil {
		return fmt.Errorf("logs: save focus: %w", err)
	}
	return nil
}

func (repository *KVVisitorStateRepository) HasVisited(context context.Context, visitorID string) (bool, error) {
	_, err := repository.store.Get(context, constants.KVPrefixGlobeVisited+visitorID)
	if errors.Is(err, kvstore.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("logs: load visited flag: %w", err)
	}
	return true, nil
}

func (repository *KVVisitorStateRepository) MarkVisited(context context.Context, visitorID string) error {
	if err := repository.store.Set(context, constants.KVPrefixGlobeVisited+visitorID, "true", repository.ttl); err != nil {
		return fmt.Errorf("logs: save visited flag: %w", err)
	}
	return nil
}
