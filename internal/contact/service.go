// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/ctxutil"
	"github.com/taibuivan/folio/internal/platform/metrics"
	"github.com/taibuivan/folio/pkg/pointer"
	"github.com/taibuivan/folio/pkg/uuidv7"
)

// Relay outcomes, used as metric labels.
const (
	outcomeSent   = "sent"
	outcomeFailed = "failed"
)

// Service validates, archives and relays contact submissions.
type Service struct {
	relay   Relay
	archive MessageRepository
	email   string
	metrics *metrics.Registry
	now     func() time.Time
}

// NewService creates the contact service. A nil archive disables archiving
// and a nil registry disables metrics.
func NewService(relay Relay, archive MessageRepository, email string, registry *metrics.Registry) *Service {
	return &Service{relay: relay, archive: archive, email: email, metrics: registry, now: time.Now}
}

// Email is the published contact address.
func (service *Service) Email() string {
	return service.email
}

// Submit relays the form. Archive failures are logged and never block the
// relay; a relay failure is reported as RELAY_FAILED.
func (service *Service) Submit(context context.Context, form Form) (*Receipt, error) {
	logger := ctxutil.GetLogger(context)

	form.Normalize()
	if err := form.Validate(); err != nil {
		return nil, err
	}

	message := &Message{
		ID:        uuidv7.New(),
		Form:      form,
		Status:    StatusPending,
		CreatedAt: service.now().UTC(),
	}
	archived := service.store(context, message)

	relayStatus, err := service.relay.Send(context, form)

	message.Status = StatusSent
	if err != nil {
		message.Status = StatusFailed
	}
	if archived {
		service.markRelayed(context, message, relayStatus)
	}

	if err != nil {
		service.metrics.ContactRelayed(outcomeFailed)
		logger.Warn("contact_relay_failed",
			slog.String("message_id", message.ID),
			slog.Int("relay_status", relayStatus),
			slog.Any("error", err),
		)
		return nil, apperr.Upstream("RELAY_FAILED", "Failed to send. Please try again.", err)
	}

	service.metrics.ContactRelayed(outcomeSent)
	logger.Info("contact_relayed", slog.String("message_id", message.ID))

	return &Receipt{ID: message.ID, Status: StatusSent, Message: SentMessage}, nil
}

// CopyPlan returns the clipboard strategies for the contact address.
func (service *Service) CopyPlan(capabilities Capabilities) *CopyPlan {
	return Plan(service.email, capabilities)
}

func (service *Service) store(context context.Context, message *Message) bool {
	if service.archive == nil {
		return false
	}
	if err := service.archive.Create(context, message); err != nil {
		ctxutil.GetLogger(context).Error("contact_archive_failed",
			slog.String("message_id", message.ID),
			slog.Any("error", err),
		)
		return false
	}
	return true
}

func (service *Service) markRelayed(context context.Context, message *Message, relayStatus int) {
	var status *int
	if relayStatus != 0 {
		status = pointer.To(relayStatus)
	}
	at := service.now().UTC()

	message.RelayStatus = status
	message.RelayedAt = &at

	if err := service.archive.MarkRelayed(context, message.ID, message.Status, status, at); err != nil {
		ctxutil.GetLogger(context).Error("contact_archive_update_failed",
			slog.String("message_id", message.ID),
			slog.Any("error", err),
		)
	}
}
