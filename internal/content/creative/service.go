// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

package creative

import (
	"context"
	"log/slog"

	"github.com/prachasan/heritage-api/internal/content/media"
	"github.com/prachasan/heritage-api/internal/listing"
	"github.com/prachasan/heritage-api/internal/platform/apperr"
	"github.com/prachasan/heritage-api/internal/platform/constants"
	"github.com/prachasan/heritage-api/internal/platform/upload"
	"github.com/prachasan/heritage-api/pkg/pagination"
	"github.com/prachasan/heritage-api/pkg/uuidv7"
)

// # Service Layer

// Service orchestrates the business logic for creative activities.
type Service struct {
	repo   Repository
	saver  upload.Saver
	logger *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, saver upload.Saver, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		saver:  saver,
		logger: logger,
	}
}

// Input carries the attributes of a create or full update submission.
type Input struct {
	CategoryID    string
	SubCategoryID string
	Name          string

	District     string
	Amphoe       string
	Province     string
	Village      *string
	Type         string
	Zipcode      *string
	DistrictCode *string
	AmphoeCode   *string
	ProvinceCode *string

	CoordinatorName *string
	Phone           *string

	Description string
	Summary     string
	Results     *string
	StartYear   int
	VideoLink   *string
}

// List returns one page of activities matching the filter.
func (service *Service) List(context context.Context, filter listing.Filter, params pagination.Params) ([]*CreativeActivity, pagination.Meta, error) {
	records, meta, err := listing.Page(context, service.repo, filter, params)
	if err != nil {
		return nil, meta, apperr.FetchFailed("creative activities", err)
	}

	return records, meta, nil
}

// Get returns one activity by ID and bumps its view counter.
func (service *Service) Get(context context.Context, id string) (*CreativeActivity, error) {
	return listing.FetchDetail(context, service.repo, id)
}

// Create stores a new activity, then persists its submitted images and the
// optional report document. File handling is best-effort per file.
func (service *Service) Create(context context.Context, input Input, images []upload.File, reportFile *upload.File) (*CreativeActivity, error) {
	record := newRecord(uuidv7.New(), input)

	if err := service.repo.Create(context, record); err != nil {
		return nil, err
	}

	record.Images = service.saveImages(context, record.ID, images)

	if reportFile != nil {
		url, err := service.saver.Save(context, constants.UploadDirCreativeFiles, *reportFile)
		if err != nil {
			service.logger.Warn("failed to store activity report file",
				"activity_id", record.ID, "file", reportFile.Name, "error", err)
		} else if err := service.repo.SetReportFileURL(context, record.ID, url); err != nil {
			service.logger.Warn("failed to link activity report file",
				"activity_id", record.ID, "url", url, "error", err)
		} else {
			record.ReportFileURL = &url
		}
	}

	return record, nil
}

// Update replaces every attribute of an existing activity and appends any
// newly submitted files.
func (service *Service) Update(context context.Context, id string, input Input, images []upload.File, reportFile *upload.File) (*CreativeActivity, error) {
	record := newRecord(id, input)

	if err := service.repo.Update(context, record); err != nil {
		return nil, err
	}

	service.saveImages(context, id, images)

	if reportFile != nil {
		url, err := service.saver.Save(context, constants.UploadDirCreativeFiles, *reportFile)
		if err != nil {
			service.logger.Warn("failed to store activity report file",
				"activity_id", id, "file", reportFile.Name, "error", err)
		} else if err := service.repo.SetReportFileURL(context, id, url); err != nil {
			service.logger.Warn("failed to link activity report file",
				"activity_id", id, "url", url, "error", err)
		}
	}

	return service.repo.FindByID(context, id)
}

// saveImages persists each submitted image and links it to the record,
// skipping failures.
func (service *Service) saveImages(context context.Context, recordID string, images []upload.File) []media.Image {
	stored := make([]media.Image, 0, len(images))

	for _, file := range images {
		url, err := service.saver.Save(context, constants.UploadDirCreativeImages, file)
		if err != nil {
			service.logger.Warn("failed to store activity image",
				"activity_id", recordID, "file", file.Name, "error", err)
			continue
		}

		image := media.Image{ID: uuidv7.New(), URL: url}
		if err := service.repo.AddImage(context, recordID, image); err != nil {
			service.logger.Warn("failed to link activity image",
				"activity_id", recordID, "url", url, "error", err)
			continue
		}

		stored = append(stored, image)
	}

	return stored
}

// newRecord builds the entity shared by Create and Update.
func newRecord(id string, input Input) *CreativeActivity {
	return &CreativeActivity{
		ID:              id,
		CategoryID:      input.CategoryID,
		SubCategoryID:   input.SubCategoryID,
		Name:            input.Name,
		District:        input.District,
		Amphoe:          input.Amphoe,
		Province:        input.Province,
		Village:         input.Village,
		Type:            input.Type,
		Zipcode:         input.Zipcode,
		DistrictCode:    input.DistrictCode,
		AmphoeCode:      input.AmphoeCode,
		ProvinceCode:    input.ProvinceCode,
		CoordinatorName: input.CoordinatorName,
		Phone:           input.Phone,
		Description:     input.Description,
		Summary:         input.Summary,
		Results:         input.Results,
		StartYear:       input.StartYear,
		VideoLink:       input.VideoLink,
		Images:          []media.Image{},
	}
}
