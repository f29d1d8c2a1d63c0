// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package logs ingests the travel log file and builds the views over it.

The log file comes in two shapes: a flat array of records, or records grouped
by year, then country, then optionally city. [Decode] accepts both and
normalises them into one ordered slice of [Entry] at the ingestion boundary;
nothing downstream looks at the file shape again.
*/
package logs

import (
	"strings"

	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/pkg/pointer"
	"github.com/taibuivan/folio/pkg/slug"
)

// MediaType distinguishes photos from clips.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Record is one photo or video as written by the metadata extractor.
type Record struct {
	Src       string    `json:"src"`
	Type      MediaType `json:"type"`
	Date      *string   `json:"date"`
	Camera    *string   `json:"camera,omitempty"`
	Country   string    `json:"country"`
	City      string    `json:"city"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
}

// HasCoordinates reports whether the record can be placed on a map.
// A zero coordinate counts as missing, like an unset one.
func (r *Record) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil && *r.Latitude != 0 && *r.Longitude != 0
}

// DateOnly returns the calendar date without any time-of-day part.
func (r *Record) DateOnly() string {
	if r.Date == nil {
		return ""
	}
	day, _, _ := strings.Cut(*r.Date, "T")
	return day
}

// Year returns the first four characters of the date, or "" when undated.
func (r *Record) Year() string {
	if r.Date == nil || len(*r.Date) < 4 {
		return ""
	}
	return (*r.Date)[:4]
}

// CameraName returns the camera model or "".
func (r *Record) CameraName() string {
	return pointer.Val(r.Camera)
}

// MediaURL is the public path of the file under the assets tree.
func (r *Record) MediaURL() string {
	if r.Type == MediaVideo {
		return constants.LogVideosBasePath + r.Src
	}
	return constants.LogImagesBasePath + r.Src
}

// Entry is a record with the group keys it was filed under.
type Entry struct {
	Record

	// Year and GroupCountry are the keys of the grouped file. For flat input
	// they are derived from the record itself.
	Year         string `json:"year"`
	GroupCountry string `json:"groupCountry"`
	GroupCity    string `json:"groupCity,omitempty"`
}

// CountryPath is the frontend route of the country page for a country name.
func CountryPath(country string) string {
	return constants.CountryLogsPathPrefix + slug.Path(country)
}

// Field names used in validation errors.
const (
	FieldCountry   = "country"
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldVisitor   = "visitor"
)
