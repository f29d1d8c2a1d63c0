// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package logs

import (
	"context"
	"log/slog"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/ctxutil"
	"github.com/taibuivan/folio/internal/platform/validate"
)

// Service builds the log views.
type Service struct {
	source Source
	state  VisitorStateRepository
}

func NewService(source Source, state VisitorStateRepository) *Service {
	return &Service{source: source, state: state}
}

// CountryLogs returns the country page. An unknown country is an empty view,
// not an error.
func (service *Service) CountryLogs(context context.Context, countrySlug string) (*CountryView, error) {
	validator := &validate.Validator{}
	validator.Required(FieldCountry, countrySlug).MaxLen(FieldCountry, countrySlug, 100)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	entries, err := service.load(context)
	if err != nil {
		return nil, err
	}

	return BuildCountryView(entries, countrySlug), nil
}

// Globe returns the globe page for a visitor. Without WebGL the fallback view
// is returned and the log file is not read. An empty visitor id gets the
// first-visit guide every time and no saved focus.
func (service *Service) Globe(context context.Context, visitorID string, webgl bool) (*GlobeView, error) {
	if !webgl {
		return UnsupportedGlobe(), nil
	}

	entries, err := service.load(context)
	if err != nil {
		return nil, err
	}

	view := &GlobeView{Supported: true, Markers: BuildMarkers(entries)}
	hasMarkers := len(view.Markers) > 0

	if visitorID == "" {
		view.Guide = newGuide(hasMarkers)
		return view, nil
	}

	focus, err := service.state.LastFocus(context, visitorID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	view.Focus = focus

	visited, err := service.state.HasVisited(context, visitorID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	view.Guide = newGuide(hasMarkers && !visited)

	if view.Guide.Show {
		if err := service.state.MarkVisited(context, visitorID); err != nil {
			ctxutil.GetLogger(context).Warn("globe_visit_not_recorded", slog.Any("error", err))
		}
	}

	return view, nil
}

// SaveFocus remembers where the visitor last clicked on the globe.
func (service *Service) SaveFocus(context context.Context, visitorID string, lat, lng float64) (*Focus, error) {
	validator := &validate.Validator{}
	validator.
		Custom(FieldVisitor, visitorID == "", "Send an X-Visitor-ID header to save state").
		Custom(FieldLatitude, lat < -90 || lat > 90, "Must be between -90 and 90").
		Custom(FieldLongitude, lng < -180 || lng > 180, "Must be between -180 and 180")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	focus := Focus{Lat: lat, Lng: lng, Altitude: FocusAltitude}
	if err := service.state.SaveFocus(context, visitorID, focus); err != nil {
		return nil, apperr.Internal(err)
	}
	return &focus, nil
}

func (service *Service) load(context context.Context) ([]Entry, error) {
	entries, err := service.source.Load(context)
	if err != nil {
		ctxutil.GetLogger(context).Error("logs_source_failed",
			slog.String("source", service.source.Name()),
			slog.Any("error", err),
		)
		return nil, apperr.Upstream("UPSTREAM_FAILED", "Log data is unavailable", err)
	}
	return entries, nil
}
