// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/prachasan/heritage-api/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for the categories endpoint.
type Handler struct {
	service *Service
}

// NewHandler constructs a new category [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the category endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.list)
	return router
}

/*
GET /api/v1/categories.

Request:
  - type: string (tradition, creative, ethnic; omitted
    returns all three trees)

Response:
  - 200: category groups with derived record counts
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	groups, err := handler.service.Get(request.Context(), request.URL.Query().Get("type"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, groups)
}
