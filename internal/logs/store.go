// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package logs

import "context"

// VisitorStateRepository remembers per-visitor globe state between page views.
type VisitorStateRepository interface {
	// LastFocus returns the saved focus, or nil when none was saved.
	LastFocus(context context.Context, visitorID string) (*Focus, error)
	SaveFocus(context context.Context, visitorID string, focus Focus) error

	// HasVisited reports whether the visitor has seen the globe before.
	HasVisited(context context.Context, visitorID string) (bool, error)
	MarkVisited(context context.Context, visitorID string) error
}
