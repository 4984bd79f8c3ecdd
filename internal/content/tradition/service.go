// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

package tradition

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

// Service orchestrates the business logic for traditions.
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

// Input carries the attributes of a create or full update submission. File
// parts travel separately.
type Input struct {
	CategoryID string
	Name       string

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

	History             string
	AlcoholFreeApproach string
	Results             *string
	StartYear           int
	VideoLink           *string
}

// List returns one page of traditions matching the filter, with the count
// and fetch legs running concurrently.
func (service *Service) List(context context.Context, filter listing.Filter, params pagination.Params) ([]*Tradition, pagination.Meta, error) {
	records, meta, err := listing.Page(context, service.repo, filter, params)
	if err != nil {
		return nil, meta, apperr.FetchFailed("traditions", err)
	}

	return records, meta, nil
}

// Get returns one tradition by ID and bumps its view counter.
func (service *Service) Get(context context.Context, id string) (*Tradition, error) {
	return listing.FetchDetail(context, service.repo, id)
}

/*
Create stores a new tradition record, then persists its submitted images and
optional policy document.

File handling is best-effort: the record insert is the transaction boundary,
and each file is saved and linked independently. A failed file is logged and
skipped so one bad upload never discards the submission.
*/
func (service *Service) Create(context context.Context, input Input, images []upload.File, policyFile *upload.File) (*Tradition, error) {
	record := newRecord(uuidv7.New(), input)

	if err := service.repo.Create(context, record); err != nil {
		return nil, err
	}

	record.Images = service.saveImages(context, record.ID, images)

	if policyFile != nil {
		url, err := service.saver.Save(context, constants.UploadDirTraditionFiles, *policyFile)
		if err != nil {
			service.logger.Warn("failed to store tradition policy file",
				"tradition_id", record.ID, "file", policyFile.Name, "error", err)
		} else if err := service.repo.SetPolicyFileURL(context, record.ID, url); err != nil {
			service.logger.Warn("failed to link tradition policy file",
				"tradition_id", record.ID, "url", url, "error", err)
		} else {
			record.PolicyFileURL = &url
		}
	}

	return record, nil
}

// Update replaces every attribute of an existing tradition and appends any
// newly submitted files.
func (service *Service) Update(context context.Context, id string, input Input, images []upload.File, policyFile *upload.File) (*Tradition, error) {
	record := newRecord(id, input)

	if err := service.repo.Update(context, record); err != nil {
		return nil, err
	}

	service.saveImages(context, id, images)

	if policyFile != nil {
		url, err := service.saver.Save(context, constants.UploadDirTraditionFiles, *policyFile)
		if err != nil {
			service.logger.Warn("failed to store tradition policy file",
				"tradition_id", id, "file", policyFile.Name, "error", err)
		} else if err := service.repo.SetPolicyFileURL(context, id, url); err != nil {
			service.logger.Warn("failed to link tradition policy file",
				"tradition_id", id, "url", url, "error", err)
		}
	}

	return service.repo.FindByID(context, id)
}

// saveImages persists each submitted image and links it to the record,
// skipping failures. It returns the images that were stored.
func (service *Service) saveImages(context context.Context, recordID string, images []upload.File) []media.Image {
	stored := make([]media.Image, 0, len(images))

	for _, file := range images {
		url, err := service.saver.Save(context, constants.UploadDirTraditionImages, file)
		if err != nil {
			service.logger.Warn("failed to store tradition image",
				"tradition_id", recordID, "file", file.Name, "error", err)
			continue
		}

		image := media.Image{ID: uuidv7.New(), URL: url}
		if err := service.repo.AddImage(context, recordID, image); err != nil {
			service.logger.Warn("failed to link tradition image",
				"tradition_id", recordID, "url", url, "error", err)
			continue
		}

		stored = append(stored, image)
	}

	return stored
}

// newRecord builds the entity shared by Create and Update.
func newRecord(id string, input Input) *Tradition {
	return &Tradition{
		ID:                  id,
		CategoryID:          input.CategoryID,
		Name:                input.Name,
		District:            input.District,
		Amphoe:              input.Amphoe,
		Province:            input.Province,
		Village:             input.Village,
		Type:                input.Type,
		Zipcode:             input.Zipcode,
		DistrictCode:        input.DistrictCode,
		AmphoeCode:          input.AmphoeCode,
		ProvinceCode:        input.ProvinceCode,
		CoordinatorName:     input.CoordinatorName,
		Phone:               input.Phone,
		History:             input.History,
		AlcoholFreeApproach: input.AlcoholFreeApproach,
		Results:             input.Results,
		StartYear:           input.StartYear,
		VideoLink:           input.VideoLink,
		Images:              []media.Image{},
	}
}
