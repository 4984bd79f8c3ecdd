// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

package creative_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prachasan/heritage-api/internal/content/creative"
	"github.com/prachasan/heritage-api/internal/content/media"
	"github.com/prachasan/heritage-api/internal/listing"
	"github.com/prachasan/heritage-api/internal/platform/apperr"
	"github.com/prachasan/heritage-api/internal/platform/upload"
	"github.com/prachasan/heritage-api/pkg/pagination"
)

// fakeRepository implements creative.Repository in memory.
type fakeRepository struct {
	records map[string]*creative.CreativeActivity
	images  map[string][]media.Image
	reports map[string]string
	listErr error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		records: map[string]*creative.CreativeActivity{},
		images:  map[string][]media.Image{},
		reports: map[string]string{},
	}
}

func (r *fakeRepository) List(_ context.Context, _ listing.Filter, _, _ int) ([]*creative.CreativeActivity, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*creative.CreativeActivity
	for _, record := range r.records {
		out = append(out, record)
	}
	return out, nil
}

func (r *fakeRepository) Count(_ context.Context, _ listing.Filter) (int, error) {
	return len(r.records), nil
}

func (r *fakeRepository) FindByID(_ context.Context, id string) (*creative.CreativeActivity, error) {
	record, ok := r.records[id]
	if !ok {
		return nil, apperr.NotFound("Creative activity")
	}
	copied := *record
	return &copied, nil
}

func (r *fakeRepository) IncrementViewCount(_ context.Context, id string) error {
	record, ok := r.records[id]
	if !ok {
		return apperr.NotFound("Creative activity")
	}
	record.ViewCount++
	return nil
}

func (r *fakeRepository) Create(_ context.Context, record *creative.CreativeActivity) error {
	r.records[record.ID] = record
	return nil
}

func (r *fakeRepository) Update(_ context.Context, record *creative.CreativeActivity) error {
	if _, ok := r.records[record.ID]; !ok {
		return apperr.NotFound("Creative activity")
	}
	r.records[record.ID] = record
	return nil
}

func (r *fakeRepository) AddImage(_ context.Context, recordID string, image media.Image) error {
	r.images[recordID] = append(r.images[recordID], image)
	return nil
}

func (r *fakeRepository) SetReportFileURL(_ context.Context, recordID, url string) error {
	r.reports[recordID] = url
	return nil
}

// fakeSaver records saved files without touching the disk.
type fakeSaver struct {
	saved []string
}

func (s *fakeSaver) Save(_ context.Context, subdir string, file upload.File) (string, error) {
	url := "/uploads/" + subdir + "/" + file.Name
	s.saved = append(s.saved, url)
	return url, nil
}

func newService(repo *fakeRepository) *creative.Service {
	return creative.NewService(repo, &fakeSaver{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func formFile(name string) upload.File {
	return upload.File{
		Name: name,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("payload")), nil
		},
	}
}

func validInput() creative.Input {
	return creative.Input{
		CategoryID:    "0191a0b0-0000-7000-8000-000000000010",
		SubCategoryID: "0191a0b0-0000-7000-8000-000000000011",
		Name:          "Youth Craft Camp",
		District:      "Suthep",
		Amphoe:        "Mueang",
		Province:      "Chiang Mai",
		Type:          "North",
		Description:   "A week-long camp teaching traditional weaving.",
		Summary:       "Forty students completed the programme.",
		StartYear:     2562,
	}
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores_record_with_report_file", func(t *testing.T) {
		repo := newFakeRepository()
		report := formFile("report.pdf")

		record, err := newService(repo).Create(ctx, validInput(),
			[]upload.File{formFile("camp.jpg")}, &report)

		require.NoError(t, err)
		assert.Equal(t, validInput().SubCategoryID, record.SubCategoryID)
		assert.Len(t, record.Images, 1)
		require.NotNil(t, record.ReportFileURL)
		assert.Contains(t, *record.ReportFileURL, "creative-activity-report-files/")
		assert.Equal(t, *record.ReportFileURL, repo.reports[record.ID])
	})

	t.Run("no_files_is_valid", func(t *testing.T) {
		record, err := newService(newFakeRepository()).Create(ctx, validInput(), nil, nil)

		require.NoError(t, err)
		assert.NotNil(t, record.Images)
		assert.Empty(t, record.Images)
		assert.Nil(t, record.ReportFileURL)
	})
}

func TestService_List(t *testing.T) {
	repo := newFakeRepository()
	repo.listErr = errors.New("connection reset")

	_, _, err := newService(repo).List(context.Background(), listing.Filter{}, pagination.Params{Page: 1, Limit: 10})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "Failed to fetch creative activities", ae.Message)
}

func TestService_Get(t *testing.T) {
	repo := newFakeRepository()
	repo.records["a"] = &creative.CreativeActivity{ID: "a", ViewCount: 9}

	record, err := newService(repo).Get(context.Background(), "a")

	require.NoError(t, err)
	assert.Equal(t, 9, record.ViewCount)
	assert.Equal(t, 10, repo.records["a"].ViewCount)
}
