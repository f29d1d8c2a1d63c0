// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package logs

import "time"

// Globe presentation constants.
const (
	// FocusAltitude is the camera altitude used when restoring the last focus.
	FocusAltitude = 1.5

	// GuideDelay and GuideDuration time the first-visit hint.
	GuideDelay    = 800 * time.Millisecond
	GuideDuration = 3 * time.Second

	// WebGLFallbackMessage replaces the globe when the browser cannot render it.
	WebGLFallbackMessage = "Your browser does not support WebGL. Try opening this page in Chrome, Safari, or a desktop browser."
)

// Marker is one pin on the globe: a country visited in a given year.
type Marker struct {
	Country string  `json:"country"`
	Year    string  `json:"year"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Label   string  `json:"label"`
	Link    string  `json:"link"`
}

// Focus is the last point a visitor looked at.
type Focus struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Altitude float64 `json:"altitude"`
}

// Guide tells the client whether and when to show the first-visit hint.
type Guide struct {
	Show       bool  `json:"show"`
	DelayMs    int64 `json:"delayMs"`
	DurationMs int64 `json:"durationMs"`
}

// GlobeView is everything the globe page needs.
type GlobeView struct {
	Supported bool     `json:"supported"`
	Fallback  string   `json:"fallback,omitempty"`
	Markers   []Marker `json:"markers"`
	Focus     *Focus   `json:"focus"`
	Guide     Guide    `json:"guide"`
}

// BuildMarkers places one marker per year and country, at the first entry
// of that group that has coordinates. Groups without coordinates get none.
func BuildMarkers(entries []Entry) []Marker {
	type groupKey struct{ year, country string }

	markers := []Marker{}
	placed := make(map[groupKey]bool)

	for _, entry := range entries {
		key := groupKey{entry.Year, entry.GroupCountry}
		if placed[key] || !entry.HasCoordinates() {
			continue
		}
		placed[key] = true

		markers = append(markers, Marker{
			Country: entry.GroupCountry,
			Year:    entry.Year,
			Lat:     *entry.Latitude,
			Lng:     *entry.Longitude,
			Label:   entry.GroupCountry + " (" + entry.Year + ")",
			Link:    CountryPath(entry.GroupCountry),
		})
	}

	return markers
}

// UnsupportedGlobe is the view for browsers without WebGL.
func UnsupportedGlobe() *GlobeView {
	return &GlobeView{
		Supported: false,
		Fallback:  WebGLFallbackMessage,
		Markers:   []Marker{},
	}
}

func newGuide(show bool) Guide {
	return Guide{
		Show:       show,
		DelayMs:    GuideDelay.Milliseconds(),
		DurationMs: GuideDuration.Milliseconds(),
	}
}
