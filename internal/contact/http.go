// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/folio/internal/platform/request"
	"github.com/taibuivan/folio/internal/platform/respond"
)

// Handler serves the contact endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes mounts under /contact.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.submit)
	router.Post("/email/copy", handler.copyEmail)

	return router
}

func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	var form Form
	if err := requestutil.DecodeJSON(writer, request, &form); err != nil {
		respond.Error(writer, request, err)
		return
	}

	receipt, err := handler.service.Submit(request.Context(), form)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Accepted(writer, receipt)
}

func (handler *Handler) copyEmail(writer http.ResponseWriter, request *http.Request) {
	var capabilities Capabilities
	if err := requestutil.DecodeJSON(writer, request, &capabilities); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, handler.service.CopyPlan(capabilities))
}
