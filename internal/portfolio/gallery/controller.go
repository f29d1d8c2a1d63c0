// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gallery

import (
	"fmt"
	"time"

	"github.com/taibuivan/folio/internal/platform/validate"
)

// State is the persisted form of a [Controller].
type State struct {
	Images       []string  `json:"images"`
	CurrentIndex int       `json:"currentIndex"`
	IsOpen       bool      `json:"isOpen"`
	OpenedAt     time.Time `json:"openedAt"`
}

// Controller is the gallery navigation state machine.
// It is not safe for concurrent use; each request restores its own copy.
type Controller struct {
	images   []string
	current  int
	open     bool
	openedAt time.Time
	now      func() time.Time
}

// Option customises a controller.
type Option func(*Controller)

// WithClock replaces time.Now, used for the swipe guide timer.
func WithClock(now func() time.Time) Option {
	return func(controller *Controller) {
		controller.now = now
	}
}

// NewController creates a closed viewer positioned on the first image.
func NewController(images []string, options ...Option) *Controller {
	controller := &Controller{
		images: append([]string(nil), images...),
		now:    time.Now,
	}
	for _, option := range options {
		option(controller)
	}
	return controller
}

// Restore rebuilds a controller from persisted state. An out-of-range
// index is clamped to the first image.
func Restore(state State, options ...Option) *Controller {
	controller := NewController(state.Images, options...)
	if state.CurrentIndex >= 0 && state.CurrentIndex < len(controller.images) {
		controller.current = state.CurrentIndex
	}
	controller.open = state.IsOpen && len(controller.images) > 0
	controller.openedAt = state.OpenedAt
	return controller
}

// State snapshots the controller for persistence.
func (controller *Controller) State() State {
	return State{
		Images:       append([]string(nil), controller.images...),
		CurrentIndex: controller.current,
		IsOpen:       controller.open,
		OpenedAt:     controller.openedAt,
	}
}

// # Accessors

func (controller *Controller) Len() int          { return len(controller.images) }
func (controller *Controller) CurrentIndex() int { return controller.current }
func (controller *Controller) IsOpen() bool      { return controller.open }

// Current returns the displayed image, or "" for an empty gallery.
func (controller *Controller) Current() string {
	if len(controller.images) == 0 {
		return ""
	}
	return controller.images[controller.current]
}

// SwipeGuideVisible reports whether the swipe hint is still showing.
func (controller *Controller) SwipeGuideVisible() bool {
	if !controller.open || controller.openedAt.IsZero() {
		return false
	}
	return controller.now().Sub(controller.openedAt) < SwipeGuideDuration
}

// # Operations

// Open shows the image at index and resets the swipe guide.
// It is a no-op on an empty gallery.
func (controller *Controller) Open(index int) error {
	if len(controller.images) == 0 {
		return nil
	}
	validator := &validate.Validator{}
	validator.Custom(FieldIndex, index < 0 || index >= len(controller.images),
		fmt.Sprintf("Must be between 0 and %d", len(controller.images)-1))
	if err := validator.Err(); err != nil {
		return err
	}

	controller.current = index
	controller.open = true
	controller.openedAt = controller.now()
	return nil
}

// Reopen shows the viewer again at the image it was closed on.
func (controller *Controller) Reopen() error {
	return controller.Open(controller.current)
}

// Click opens the viewer directly on a thumbnail.
func (controller *Controller) Click(index int) error {
	return controller.Open(index)
}

// Close hides the viewer. The index is kept so reopening resumes in place.
func (controller *Controller) Close() {
	controller.open = false
}

// Next advances one image, wrapping to the first.
func (controller *Controller) Next() {
	if len(controller.images) == 0 {
		return
	}
	controller.current = (controller.current + 1) % len(controller.images)
}

// Previous goes back one image, wrapping to the last.
func (controller *Controller) Previous() {
	if len(controller.images) == 0 {
		return
	}
	controller.current = (controller.current - 1 + len(controller.images)) % len(controller.images)
}

// # Input Bindings

// HandleKey applies a keyboard key. Keys are ignored while the viewer is
// closed. It reports whether the key changed anything.
func (controller *Controller) HandleKey(key string) bool {
	if !controller.open {
		return false
	}

	switch key {
	case KeyArrowRight:
		controller.Next()
	case KeyArrowLeft:
		controller.Previous()
	case KeyEscape:
		controller.Close()
	default:
		return false
	}
	return true
}

// HandleSwipe applies a touch gesture while open: swiping left shows the
// next image, swiping right the previous one.
func (controller *Controller) HandleSwipe(swipe Swipe) bool {
	if !controller.open {
		return false
	}

	switch swipe.Direction() {
	case DirectionLeft:
		controller.Next()
	case DirectionRight:
		controller.Previous()
	default:
		return false
	}
	return true
}
