// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

package policy

import (
	"net/http"
	"time"

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

// signingDateLayout is the wire format of the signingDate form field.
const signingDateLayout = "2006-01-02"

// Handler implements the HTTP layer for browsing and managing public
// policies.
type Handler struct {
	service *Service
}

// NewHandler constructs a new public-policy [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the public-policy endpoints.
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
GET /api/v1/public-policies.

Request:
  - region, province: string ("all" disables the filter)
  - year: int (Buddhist Era; matched against the signing date as the
    half-open Gregorian range [year-543 Jan 1, next Jan 1))
  - level: string (subdistrict, district, provincial, healthregion)
  - healthRegion: string
  - limit, page: int

Response:
  - 200: paginated list of policies, most recently signed first
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	filter := listing.FromQuery(request.URL.Query(), listing.YearAsSigningDate)

	records, meta, err := handler.service.List(request.Context(), filter, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, records, meta)
}

// GET /api/v1/public-policies/{id}. Adds one view per successful fetch.
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.service.Get(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}

// POST /api/v1/public-policies. Multipart form with repeatable "content"
// clause fields, "images", and an optional "policyFile".
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

// PUT /api/v1/public-policies/{id}. Full-field update with the same
// multipart shape as creation.
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
		Name:         requestutil.FormString(request, "name"),
		Level:        requestutil.FormString(request, "level"),
		HealthRegion: requestutil.FormStringPtr(request, "healthRegion"),
		District:     requestutil.FormString(request, "district"),
		Amphoe:       requestutil.FormString(request, "amphoe"),
		Province:     requestutil.FormString(request, "province"),
		Village:      requestutil.FormStringPtr(request, "village"),
		Type:         requestutil.FormString(request, "type"),
		Zipcode:      requestutil.FormStringPtr(request, "zipcode"),
		DistrictCode: requestutil.FormStringPtr(request, "districtCode"),
		AmphoeCode:   requestutil.FormStringPtr(request, "amphoeCode"),
		ProvinceCode: requestutil.FormStringPtr(request, "provinceCode"),
		Content:      request.MultipartForm.Value["content"],
		Summary:      requestutil.FormString(request, "summary"),
		Results:      requestutil.FormStringPtr(request, "results"),
		VideoLink:    requestutil.FormStringPtr(request, "videoLink"),
	}

	rawDate := requestutil.FormString(request, "signingDate")
	signingDate, dateErr := time.Parse(signingDateLayout, rawDate)
	input.SigningDate = signingDate

	v := &validate.Validator{}
	v.Required("name", input.Name)
	v.Custom("signingDate", dateErr != nil, "Must be a date in YYYY-MM-DD format")
	v.OneOf("level", input.Level, LevelSubDistrict, LevelDistrict, LevelProvincial, LevelHealthRegion)
	v.Required("district", input.District)
	v.Required("amphoe", input.Amphoe)
	v.Required("province", input.Province)
	v.Required("type", input.Type)
	v.Required("summary", input.Summary)
	v.Custom("content", len(input.Content) == 0, "At least one policy clause is required")
	v.Custom("healthRegion", input.Level == LevelHealthRegion && input.HealthRegion == nil,
		"Required for health-region level policies")

	return input, v.Err()
}
