// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gallery

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/folio/internal/platform/request"
	"github.com/taibuivan/folio/internal/platform/respond"
	"github.com/taibuivan/folio/internal/portfolio/project"
)

// Handler serves the viewer session endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes mounts under /gallery.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Route("/{session}", func(sessionRoute chi.Router) {
		sessionRoute.Get("/", handler.getSession)
		sessionRoute.Post("/open", handler.open)
		sessionRoute.Post("/close", handler.close)
		sessionRoute.Post("/next", handler.next)
		sessionRoute.Post("/previous", handler.previous)
		sessionRoute.Post("/key", handler.key)
		sessionRoute.Post("/swipe", handler.swipe)
	})

	return router
}

// RegisterProjectRoutes adds session creation below /projects/{id}.
func (handler *Handler) RegisterProjectRoutes(projectRoute chi.Router) {
	projectRoute.Post("/gallery", handler.create)
}

// openRequest without an index resumes where the viewer was closed.
type openRequest struct {
	Index *int `json:"index"`
}

type keyRequest struct {
	Key string `json:"key"`
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	projectID, err := requestutil.IntParam(request, project.FieldID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.service.Create(request.Context(), projectID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, view)
}

func (handler *Handler) getSession(writer http.ResponseWriter, request *http.Request) {
	view, err := handler.service.Get(request.Context(), requestutil.Param(request, FieldSession))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

func (handler *Handler) open(writer http.ResponseWriter, request *http.Request) {
	var input openRequest
	if err := requestutil.DecodeOptionalJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.service.Open(request.Context(), requestutil.Param(request, FieldSession), input.Index)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

func (handler *Handler) close(writer http.ResponseWriter, request *http.Request) {
	view, err := handler.service.Close(request.Context(), requestutil.Param(request, FieldSession))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

func (handler *Handler) next(writer http.ResponseWriter, request *http.Request) {
	view, err := handler.service.Next(request.Context(), requestutil.Param(request, FieldSession))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

func (handler *Handler) previous(writer http.ResponseWriter, request *http.Request) {
	view, err := handler.service.Previous(request.Context(), requestutil.Param(request, FieldSession))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

func (handler *Handler) key(writer http.ResponseWriter, request *http.Request) {
	var input keyRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Key(request.Context(), requestutil.Param(request, FieldSession), input.Key)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

func (handler *Handler) swipe(writer http.ResponseWriter, request *http.Request) {
	var input Swipe
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Swipe(request.Context(), requestutil.Param(request, FieldSession), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}
