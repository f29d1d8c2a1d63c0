// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gallery

import (
	"context"
	"errors"
	"time"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/kvstore"
)

// KVSessionRepository keeps sessions in the key-value store with a sliding TTL.
type KVSessionRepository struct {
	store kvstore.Store
	ttl   time.Duration
}

// NewKVSessionRepository creates a session repository.
func NewKVSessionRepository(store kvstore.Store, ttl time.Duration) *KVSessionRepository {
	return &KVSessionRepository{store: store, ttl: ttl}
}

func (repository *KVSessionRepository) Get(context context.Context, id string) (*Session, error) {
	var session Session
	err := kvstore.GetJSON(context, repository.store, constants.KVPrefixGallerySession+id, &session)
	if errors.Is(err, kvstore.ErrNotFound) {
		return nil, apperr.NotFound("Gallery session")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &session, nil
}

func (repository *KVSessionRepository) Save(context context.Context, session *Session) error {
	if err := kvstore.SetJSON(context, repository.store, constants.KVPrefixGallerySession+session.ID, session, repository.ttl); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
