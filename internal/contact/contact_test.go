// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/contact"
	"github.com/taibuivan/folio/internal/platform/apperr"
)

func validForm() contact.Form {
	return contact.Form{Name: "Ann Lee", Email: "ann@example.com", Message: "Hello there"}
}

func TestForm_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*contact.Form)
		wantField string
	}{
		{"valid", func(*contact.Form) {}, ""},
		{"missing name", func(form *contact.Form) { form.Name = "" }, contact.FieldName},
		{"multi-line name", func(form *contact.Form) { form.Name = "Ann\nLee" }, contact.FieldName},
		{"bad email", func(form *contact.Form) { form.Email = "not-an-email" }, contact.FieldEmail},
		{"display name email", func(form *contact.Form) { form.Email = "Ann <ann@example.com>" }, contact.FieldEmail},
		{"missing message", func(form *contact.Form) { form.Message = "" }, contact.FieldMessage},
		{"long message", func(form *contact.Form) { form.Message = strings.Repeat("x", 5001) }, contact.FieldMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			err := form.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			appErr := apperr.As(err)
			require.NotEmpty(t, appErr.Details)
			assert.Equal(t, tt.wantField, appErr.Details[0].Field)
		})
	}
}

func TestForm_Normalize(t *testing.T) {
	form := contact.Form{Name: "  Ann ", Email: " ann@example.com\n", Message: "\thi "}
	form.Normalize()

	assert.Equal(t, contact.Form{Name: "Ann", Email: "ann@example.com", Message: "hi"}, form)
}

func TestPlan(t *testing.T) {
	tests := []struct {
		name         string
		capabilities contact.Capabilities
		want         []contact.Strategy
	}{
		{
			"modern browser",
			contact.Capabilities{SecureContext: true, ClipboardAPI: true, Selection: true},
			[]contact.Strategy{contact.StrategyClipboardAPI, contact.StrategySelection, contact.StrategyManual},
		},
		{
			"clipboard api outside secure context",
			contact.Capabilities{ClipboardAPI: true, Selection: true},
			[]contact.Strategy{contact.StrategySelection, contact.StrategyManual},
		},
		{
			"secure context without clipboard api",
			contact.Capabilities{SecureContext: true},
			[]contact.Strategy{contact.StrategyManual},
		},
		{
			"nothing supported",
			contact.Capabilities{},
			[]contact.Strategy{contact.StrategyManual},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := contact.Plan("me@example.com", tt.capabilities)

			assert.Equal(t, tt.want, plan.Strategies)
			assert.Equal(t, "me@example.com", plan.Email)
			assert.Equal(t, contact.CopiedMessage, plan.SuccessMessage)
		})
	}
}
