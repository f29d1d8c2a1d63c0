// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package gallery implements the full-screen image viewer of a project page.

A [Controller] owns the image sequence, the current index and the open flag.
Viewer sessions live in the key-value store between requests; every request
restores a controller from its [State], applies one input and saves it back.
*/
package gallery

import (
	"math"
	"time"

	"github.com/taibuivan/folio/internal/portfolio/project"
)

// # Input Constants

const (
	// SwipeThreshold is the horizontal travel, in CSS pixels, a touch must
	// exceed to count as a swipe.
	SwipeThreshold = 50.0

	// SwipeGuideDuration is how long the swipe hint stays visible after Open.
	SwipeGuideDuration = 3 * time.Second
)

// Key names as reported by browser keyboard events.
const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyEscape     = "Escape"
)

// # Sequence Construction

// BuildSequence returns the ordered gallery images of a project.
//
// Rules, first match wins:
//   - single-image projects show only the primary image;
//   - design projects show the first additional image, then the primary
//     image, then the remaining additional images;
//   - other projects show the primary image followed by all additional images;
//   - without additional images the sequence is the primary image alone.
func BuildSequence(p *project.Project) []string {
	if p.SingleImage {
		return []string{p.Image}
	}

	additional := p.AdditionalImages()
	if len(additional) == 0 {
		return []string{p.Image}
	}

	images := make([]string, 0, len(additional)+1)
	if p.IsDesign() {
		images = append(images, additional[0], p.Image)
		return append(images, additional[1:]...)
	}

	images = append(images, p.Image)
	return append(images, additional...)
}

// # Gestures

// Point is a touch position in viewport coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Swipe is one completed touch from start to end.
type Swipe struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
}

// Direction classifies a swipe.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
)

// Direction returns the horizontal direction of the swipe, or DirectionNone
// when it is too short or mostly vertical.
func (s Swipe) Direction() Direction {
	dx := s.End.X - s.Start.X
	absDx, absDy := math.Abs(dx), math.Abs(s.End.Y-s.Start.Y)

	if absDx <= SwipeThreshold || absDx <= absDy {
		return DirectionNone
	}
	if dx < 0 {
		return DirectionLeft
	}
	return DirectionRight
}

// Field names used in validation errors.
const (
	FieldIndex   = "index"
	FieldKey     = "key"
	FieldSession = "session"
)
