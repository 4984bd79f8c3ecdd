// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

package creative

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

// Handler implements the HTTP layer for browsing and managing creative
// activities.
type Handler struct {
	service *Service
}

// NewHandler constructs a new creative-activity [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the creative-activity endpoints.
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
GET /api/v1/creative-activities.

Request:
  - categoryId, subCategoryId: string (UUID)
  - region, province: string ("all" disables the filter)
  - year: int (Buddhist Era start year)
  - limit, page: int

Response:
  - 200: paginated list of activities, newest first
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

// GET /api/v1/creative-activities/{id}. Adds one view per successful fetch.
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.service.Get(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}

// POST /api/v1/creative-activities. Multipart form with "images" and an
// optional "reportFile".
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	input, err := parseForm(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.Create(request.Context(), input,
		upload.FromRequest(request, "images"),
		upload.OneFromRequest(request, "reportFile"),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, record)
}

// PUT /api/v1/creative-activities/{id}. Full-field update with the same
// multipart shape as creation.
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	input, err := parseForm(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.Update(request.Context(), requestutil.ID(request, "id"), input,
		upload.FromRequest(request, "images"),
		upload.OneFromRequest(request, "reportFile"),
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
		CategoryID:      requestutil.FormString(request, "categoryId"),
		SubCategoryID:   requestutil.FormString(request, "subCategoryId"),
		Name:            requestutil.FormString(request, "name"),
		District:        requestutil.FormString(request, "district"),
		Amphoe:          requestutil.FormString(request, "amphoe"),
		Province:        requestutil.FormString(request, "province"),
		Village:         requestutil.FormStringPtr(request, "village"),
		Type:            requestutil.FormString(request, "type"),
		Zipcode:         requestutil.FormStringPtr(request, "zipcode"),
		DistrictCode:    requestutil.FormStringPtr(request, "districtCode"),
		AmphoeCode:      requestutil.FormStringPtr(request, "amphoeCode"),
		ProvinceCode:    requestutil.FormStringPtr(request, "provinceCode"),
		CoordinatorName: requestutil.FormStringPtr(request, "coordinatorName"),
		Phone:           requestutil.FormStringPtr(request, "phone"),
		Description:     requestutil.FormString(request, "description"),
		Summary:         requestutil.FormString(request, "summary"),
		Results:         requestutil.FormStringPtr(request, "results"),
		StartYear:       requestutil.FormInt(request, "startYear", 0),
		VideoLink:       requestutil.FormStringPtr(request, "videoLink"),
	}

	v := &validate.Validator{}
	v.Required("name", input.Name)
	v.UUID("categoryId", input.CategoryID)
	v.UUID("subCategoryId", input.SubCategoryID)
	v.Required("district", input.District)
	v.Required("amphoe", input.Amphoe)
	v.Required("province", input.Province)
	v.Required("type", input.Type)
	v.Required("description", input.Description)
	v.Required("summary", input.Summary)
	v.Custom("startYear", input.StartYear <= 0, "Must be a Buddhist Era year")

	return input, v.Err()
}
