// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

package ethnic

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

// Service orchestrates the business logic for ethnic groups.
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
	CategoryID string
	Name       string

	History             string
	ActivityName        string
	ActivityOrigin      string
	ActivityDetails     string
	AlcoholFreeApproach string
	Results             *string
	StartYear           int

	District     string
	Amphoe       string
	Province     string
	Village      *string
	Type         string
	Zipcode      *string
	DistrictCode *string
	AmphoeCode   *string
	ProvinceCode *string

	VideoLink *string
}

// List returns one page of ethnic groups matching the filter.
func (service *Service) List(context context.Context, filter listing.Filter, params pagination.Params) ([]*EthnicGroup, pagination.Meta, error) {
	records, meta, err := listing.Page(context, service.repo, filter, params)
	if err != nil {
		return nil, meta, apperr.FetchFailed("ethnic groups", err)
	}

	return records, meta, nil
}

// Get returns one ethnic group by ID and bumps its view counter.
func (service *Service) Get(context context.Context, id string) (*EthnicGroup, error) {
	return listing.FetchDetail(context, service.repo, id)
}

// Create stores a new ethnic group, then persists its submitted images and
// optional supporting document. File handling is best-effort per file.
func (service *Service) Create(context context.Context, input Input, images []upload.File, document *upload.File) (*EthnicGroup, error) {
	record := newRecord(uuidv7.New(), input)

	if err := service.repo.Create(context, record); err != nil {
		return nil, err
	}

	record.Images = service.saveImages(context, record.ID, images)

	if document != nil {
		url, err := service.saver.Save(context, constants.UploadDirEthnicFiles, *document)
		if err != nil {
			service.logger.Warn("failed to store ethnic group document",
				"group_id", record.ID, "file", document.Name, "error", err)
		} else if err := service.repo.SetFileURL(context, record.ID, url); err != nil {
			service.logger.Warn("failed to link ethnic group document",
				"group_id", record.ID, "url", url, "error", err)
		} else {
			record.FileURL = &url
		}
	}

	return record, nil
}

// Update replaces every attribute of an existing ethnic group and appends
// any newly submitted files.
func (service *Service) Update(context context.Context, id string, input Input, images []upload.File, document *upload.File) (*EthnicGroup, error) {
	record := newRecord(id, input)

	if err := service.repo.Update(context, record); err != nil {
		return nil, err
	}

	service.saveImages(context, id, images)

	if document != nil {
		url, err := service.saver.Save(context, constants.UploadDirEthnicFiles, *document)
		if err != nil {
			service.logger.Warn("failed to store ethnic group document",
				"group_id", id, "file", document.Name, "error", err)
		} else if err := service.repo.SetFileURL(context, id, url); err != nil {
			service.logger.Warn("failed to link ethnic group document",
				"group_id", id, "url", url, "error", err)
		}
	}

	return service.repo.FindByID(context, id)
}

// saveImages persists each submitted image and links it to the record,
// skipping failures.
func (service *Service) saveImages(context context.Context, recordID string, images []upload.File) []media.Image {
	stored := make([]media.Image, 0, len(images))

	for _, file := range images {
		url, err := service.saver.Save(context, constants.UploadDirEthnicImages, file)
		if err != nil {
			service.logger.Warn("failed to store ethnic group image",
				"group_id", recordID, "file", file.Name, "error", err)
			continue
		}

		image := media.Image{ID: uuidv7.New(), URL: url}
		if err := service.repo.AddImage(context, recordID, image); err != nil {
			service.logger.Warn("failed to link ethnic group image",
				"group_id", recordID, "url", url, "error", err)
			continue
		}

		stored = append(stored, image)
	}

	return stored
}

// newRecord builds the entity shared by Create and Update.
func newRecord(id string, input Input) *EthnicGroup {
	return &EthnicGroup{
		ID:                  id,
		CategoryID:          input.CategoryID,
		Name:                input.Name,
		History:             input.History,
		ActivityName:        input.ActivityName,
		ActivityOrigin:      input.ActivityOrigin,
		ActivityDetails:     input.ActivityDetails,
		AlcoholFreeApproach: input.AlcoholFreeApproach,
		Results:             input.Results,
		StartYear:           input.StartYear,
		District:            input.District,
		Amphoe:              input.Amphoe,
		Province:            input.Province,
		Village:             input.Village,
		Type:                input.Type,
		Zipcode:             input.Zipcode,
		DistrictCode:        input.DistrictCode,
		AmphoeCode:          input.AmphoeCode,
		ProvinceCode:        input.ProvinceCode,
		VideoLink:           input.VideoLink,
		Images:              []media.Image{},
	}
}
