// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/prachasan/heritage-api/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for the dashboard endpoint.
type Handler struct {
	service *Service
}

// NewHandler constructs a new dashboard [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the dashboard endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.get)
	return router
}

/*
GET /api/v1/dashboard.

Request:
  - year: int (Buddhist Era; "all" disables the filter)
  - region, province: string ("all" disables the filter)

Response:
  - 200: overview counts, chart breakdowns, known locations, and the echoed
    filter values
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	query := QueryFromValues(request.URL.Query())

	dashboard, err := handler.service.Get(request.Context(), query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, dashboard)
}
