// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package project

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/folio/internal/platform/request"
	"github.com/taibuivan/folio/internal/platform/respond"
	"github.com/taibuivan/folio/pkg/query"
)

// Handler serves the catalog endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes mounts under /projects. Extra registers additional routes on the
// same {id} subtree (the gallery mounts its session creation here).
func (handler *Handler) Routes(extra ...func(chi.Router)) chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listProjects)
	router.Route("/{id}", func(projectRoute chi.Router) {
		projectRoute.Get("/", handler.getProject)
		projectRoute.Get("/neighbors", handler.getNeighbors)
		for _, register := range extra {
			register(projectRoute)
		}
	})

	return router
}

type projectResponse struct {
	*Project
	Images     []string `json:"images"`
	DetailPath string   `json:"detailPath"`
}

func (handler *Handler) listProjects(writer http.ResponseWriter, request *http.Request) {
	params := request.URL.Query()

	filter := Filter{
		Kind:    Kind(params.Get("filter")),
		Tags:    query.StringSlice(params.Get("tag")),
		Student: query.Bool(params.Get("student"), false),
	}

	projects, err := handler.service.List(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, projects)
}

func (handler *Handler) getProject(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, FieldID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	p, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, projectResponse{
		Project:    p,
		Images:     handler.service.Images(p),
		DetailPath: p.DetailPath(),
	})
}

func (handler *Handler) getNeighbors(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, FieldID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	neighbors, err := handler.service.Neighbors(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, neighbors)
}
