// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact

// Strategy is one way of putting the contact address on the clipboard.
type Strategy string

const (
	// StrategyClipboardAPI uses the asynchronous clipboard API.
	StrategyClipboardAPI Strategy = "clipboard_api"
	// StrategySelection selects a hidden text field and issues a copy command.
	StrategySelection Strategy = "selection_copy"
	// StrategyManual shows the address so the visitor can copy it by hand.
	StrategyManual Strategy = "manual"
)

// Toast texts for the copy outcome.
const (
	CopiedMessage     = "Email copied to clipboard!"
	CopyFailedMessage = "Failed to copy email."
)

// Capabilities describes what the visitor's browser reported.
type Capabilities struct {
	SecureContext bool `json:"secureContext"`
	ClipboardAPI  bool `json:"clipboardApi"`
	Selection     bool `json:"selectionCopy"`
}

// CopyPlan lists strategies in the order the frontend should try them.
// The manual strategy is always last, so a plan is never empty.
type CopyPlan struct {
	Email          string     `json:"email"`
	Strategies     []Strategy `json:"strategies"`
	SuccessMessage string     `json:"successMessage"`
	FailureMessage string     `json:"failureMessage"`
}

// Plan orders the strategies the browser can run.
func Plan(email string, capabilities Capabilities) *CopyPlan {
	strategies := make([]Strategy, 0, 3)
	if capabilities.SecureContext && capabilities.ClipboardAPI {
		strategies = append(strategies, StrategyClipboardAPI)
	}
	if capabilities.Selection {
		strategies = append(strategies, StrategySelection)
	}
	strategies = append(strategies, StrategyManual)

	return &CopyPlan{
		Email:          email,
		Strategies:     strategies,
		SuccessMessage: CopiedMessage,
		FailureMessage: CopyFailedMessage,
	}
}
