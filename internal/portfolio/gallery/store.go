// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gallery

import "context"

// SessionRepository persists viewer sessions.
type SessionRepository interface {
	// Get returns a session or a NOT_FOUND error when it is unknown or expired.
	Get(context context.Context, id string) (*Session, error)

	// Save stores the session and refreshes its expiry.
	Save(context context.Context, session *Session) error
}
