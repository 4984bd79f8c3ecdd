// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

package tradition

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/prachasan/heritage-api/internal/listing"
	"github.com/prachasan/heritage-api/internal/platform/constants"
	"github.com/prachasan/heritage-api/internal/platform/middleware"
	requestutil "github.com/prachasan/heritage-api/internal/platform/request"
	"github.com/prachasan/heritage-api/internal/platform/respond"
	"github.com/prachasan/heritage-api/internal/platform/sec"
	"github.com/prachasan/heritage-api/internal/platform/upload"
	"github.com/prachasan/heritage-api/internal/platform/validate"
	"github.com/prachasan/heritage-api/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for browsing and managing traditions.
type Handler struct {
	service *Service
}

// NewHandler constructs a new tradition [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the tradition endpoints.
//
// Browsing is public; submissions require an admin or editor token.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Public Browsing
	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)

	// ## Content Management
	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin, sec.RoleEditor))

		admin.Post("/", handler.create)
		admin.Put("/{id}", handler.update)
	})

	return router
}

/*
GET /api/v1/traditions.

Request:
  - categoryId: string (UUID)
  - region: string ("all" disables the filter)
  - province: string ("all" disables the filter)
  - year: int (Buddhist Era start year)
  - limit, page: int

Response:
  - 200: paginated list of traditions, newest first
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	filter := listing.FromQuery(request.URL.Query(), listing.YearAsStartYear)

	records, meta, err := handler.service.List(request.Context(), filter, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, records, meta)
}

/*
GET /api/v1/traditions/{id}.

Returns the full record including all images. Each successful fetch adds one
view; the response carries the count as it stood before this fetch.

Response:
  - 200: the tradition
  - 404: unknown ID (views unchanged)
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.service.Get(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}

/*
POST /api/v1/traditions.

Accepts a multipart form: scalar attributes as fields, images under the
"images" field (repeatable) and the policy document under "policyFile".

Response:
  - 201: the created tradition
  - 400: validation failure
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	input, err := parseForm(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.Create(request.Context(), input,
		upload.FromRequest(request, "images"),
		upload.OneFromRequest(request, "policyFile"),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, record)
}

/*
PUT /api/v1/traditions/{id}.

Full-field update with the same multipart shape as creation. Newly submitted
files are appended to the record.

Response:
  - 200: the updated tradition
  - 404: unknown ID
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	input, err := parseForm(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.Update(request.Context(), requestutil.ID(request, "id"), input,
		upload.FromRequest(request, "images"),
		upload.OneFromRequest(request, "policyFile"),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}

// parseForm decodes and validates the multipart submission shared by create
// and update.
func parseForm(request *http.Request) (Input, error) {
	if err := request.ParseMultipartForm(constants.MaxMultipartMemory); err != nil {
		return Input{}, validate.ErrInvalidForm
	}

	input := Input{
		CategoryID:          requestutil.FormString(request, "categoryId"),
		Name:                requestutil.FormString(request, "name"),
		District:            requestutil.FormString(request, "district"),
		Amphoe:              requestutil.FormString(request, "amphoe"),
		Province:            requestutil.FormString(request, "province"),
		Village:             requestutil.FormStringPtr(request, "village"),
		Type:                requestutil.FormString(request, "type"),
		Zipcode:             requestutil.FormStringPtr(request, "zipcode"),
		DistrictCode:        requestutil.FormStringPtr(request, "districtCode"),
		AmphoeCode:          requestutil.FormStringPtr(request, "amphoeCode"),
		ProvinceCode:        requestutil.FormStringPtr(request, "provinceCode"),
		CoordinatorName:     requestutil.FormStringPtr(request, "coordinatorName"),
		Phone:               requestutil.FormStringPtr(request, "phone"),
		History:             requestutil.FormString(request, "history"),
		AlcoholFreeApproach: requestutil.FormString(request, "alcoholFreeApproach"),
		Results:             requestutil.FormStringPtr(request, "results"),
		StartYear:           requestutil.FormInt(request, "startYear", 0),
		VideoLink:           requestutil.FormStringPtr(request, "videoLink"),
	}

	v := &validate.Validator{}
	v.Required("name", input.Name)
	v.UUID("categoryId", input.CategoryID)
	v.Required("district", input.District)
	v.Required("amphoe", input.Amphoe)
	v.Required("province", input.Province)
	v.Required("type", input.Type)
	v.Required("history", input.History)
	v.Required("alcoholFreeApproach", input.AlcoholFreeApproach)
	v.Custom("startYear", input.StartYear <= 0, "Must be a Buddhist Era year")

	return input, v.Err()
}
