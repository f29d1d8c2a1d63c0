// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact

import (
	"context"
	"time"
)

// MessageRepository archives submissions.
type MessageRepository interface {
	Create(context context.Context, message *Message) error
	// MarkRelayed records the relay outcome for a previously created message.
	MarkRelayed(context context.Context, id string, status Status, relayStatus *int, at time.Time) error
}
