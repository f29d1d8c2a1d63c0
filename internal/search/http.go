// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/folio/internal/platform/respond"
	"github.com/taibuivan/folio/pkg/pagination"
)

// Handler serves GET /search.
type Handler struct {
	merger *Merger
}

func NewHandler(merger *Merger) *Handler {
	return &Handler{merger: merger}
}

// Routes mounts under /search.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.search)
	return router
}

// search pages the merged list; degradation applies to the whole query,
// so every page reports it.
func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	outcome, err := handler.merger.Search(request.Context(), request.URL.Query().Get(FieldQuery))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, meta := pagination.Window(outcome.Results, pagination.FromRequest(request))
	outcome.Results = page

	respond.Paginated(writer, outcome, meta)
}
