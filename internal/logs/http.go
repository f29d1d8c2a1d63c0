// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package logs

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/folio/internal/platform/request"
	"github.com/taibuivan/folio/internal/platform/respond"
	"github.com/taibuivan/folio/pkg/query"
)

// Handler serves the log views.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes mounts under /logs.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/countries/{country}", handler.getCountry)
	router.Get("/globe", handler.getGlobe)
	router.Put("/globe/focus", handler.putFocus)

	return router
}

type focusRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (handler *Handler) getCountry(writer http.ResponseWriter, request *http.Request) {
	view, err := handler.service.CountryLogs(request.Context(), requestutil.Param(request, FieldCountry))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

// getGlobe takes ?webgl=false from clients that failed the capability check.
func (handler *Handler) getGlobe(writer http.ResponseWriter, request *http.Request) {
	webgl := query.Bool(request.URL.Query().Get("webgl"), true)

	view, err := handler.service.Globe(request.Context(), requestutil.VisitorID(request), webgl)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

func (handler *Handler) putFocus(writer http.ResponseWriter, request *http.Request) {
	var input focusRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	focus, err := handler.service.SaveFocus(request.Context(), requestutil.VisitorID(request), input.Lat, input.Lng)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, focus)
}
