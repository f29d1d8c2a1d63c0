// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package contact relays the portfolio contact form to an external form
service and tells the frontend how to copy the contact address.

When a database is configured every submission is archived before it is
relayed, and the archive row records the relay outcome afterwards.
*/
package contact

import (
	"strings"
	"time"

	"github.com/taibuivan/folio/internal/platform/validate"
)

// Field names used in validation details.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

// Column limits; they match the contact.message table.
const (
	maxNameLength    = 120
	maxEmailLength   = 254
	maxMessageLength = 5000
)

// SentMessage is shown to the visitor after a successful relay.
const SentMessage = "Your message has been sent!"

// Form is the payload posted by the contact page and forwarded to the relay.
type Form struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Normalize trims surrounding whitespace from every field.
func (form *Form) Normalize() {
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	form.Message = strings.TrimSpace(form.Message)
}

// Validate checks the three required fields.
func (form *Form) Validate() error {
	validator := &validate.Validator{}
	validator.Required(FieldName, form.Name).
		MaxLen(FieldName, form.Name, maxNameLength).
		SingleLine(FieldName, form.Name)
	validator.Required(FieldEmail, form.Email).
		MaxLen(FieldEmail, form.Email, maxEmailLength).
		Email(FieldEmail, form.Email)
	validator.Required(FieldMessage, form.Message).
		MaxLen(FieldMessage, form.Message, maxMessageLength)
	return validator.Err()
}

// Status is the archive state of a submission.
type Status string

const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
)

// Message is an archived submission.
type Message struct {
	ID          string
	Form        Form
	Status      Status
	RelayStatus *int
	CreatedAt   time.Time
	RelayedAt   *time.Time
}

// Receipt is returned to the visitor after a successful relay.
type Receipt struct {
	ID      string `json:"id"`
	Status  Status `json:"status"`
	Message string `json:"message"`
}
