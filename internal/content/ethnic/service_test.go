// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

package ethnic_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prachasan/heritage-api/internal/content/ethnic"
	"github.com/prachasan/heritage-api/internal/content/media"
	"github.com/prachasan/heritage-api/internal/listing"
	"github.com/prachasan/heritage-api/internal/platform/apperr"
	"github.com/prachasan/heritage-api/internal/platform/upload"
)

// fakeRepository implements ethnic.Repository in memory.
type fakeRepository struct {
	records map[string]*ethnic.EthnicGroup
	images  map[string][]media.Image
	files   map[string]string
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		records: map[string]*ethnic.EthnicGroup{},
		images:  map[string][]media.Image{},
		files:   map[string]string{},
	}
}

func (r *fakeRepository) List(_ context.Context, _ listing.Filter, _, _ int) ([]*ethnic.EthnicGroup, error) {
	var out []*ethnic.EthnicGroup
	for _, record := range r.records {
		out = append(out, record)
	}
	return out, nil
}

func (r *fakeRepository) Count(_ context.Context, _ listing.Filter) (int, error) {
	return len(r.records), nil
}

func (r *fakeRepository) FindByID(_ context.Context, id string) (*ethnic.EthnicGroup, error) {
	record, ok := r.records[id]
	if !ok {
		return nil, apperr.NotFound("Ethnic group")
	}
	copied := *record
	return &copied, nil
}

func (r *fakeRepository) IncrementViewCount(_ context.Context, id string) error {
	record, ok := r.records[id]
	if !ok {
		return apperr.NotFound("Ethnic group")
	}
	record.ViewCount++
	return nil
}

func (r *fakeRepository) Create(_ context.Context, record *ethnic.EthnicGroup) error {
	r.records[record.ID] = record
	return nil
}

func (r *fakeRepository) Update(_ context.Context, record *ethnic.EthnicGroup) error {
	if _, ok := r.records[record.ID]; !ok {
		return apperr.NotFound("Ethnic group")
	}
	r.records[record.ID] = record
	return nil
}

func (r *fakeRepository) AddImage(_ context.Context, recordID string, image media.Image) error {
	r.images[recordID] = append(r.images[recordID], image)
	return nil
}

func (r *fakeRepository) SetFileURL(_ context.Context, recordID, url string) error {
	r.files[recordID] = url
	return nil
}

// fakeSaver records saved files without touching the disk.
type fakeSaver struct{}

func (fakeSaver) Save(_ context.Context, subdir string, file upload.File) (string, error) {
	return "/uploads/" + subdir + "/" + file.Name, nil
}

func newService(repo *fakeRepository) *ethnic.Service {
	return ethnic.NewService(repo, fakeSaver{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func validInput() ethnic.Input {
	return ethnic.Input{
		CategoryID:          "0191a0b0-0000-7000-8000-000000000020",
		Name:                "Phu Thai of Renu Nakhon",
		History:             "Settled along the Songkhram river two centuries ago.",
		ActivityName:        "Phu Thai dance",
		ActivityOrigin:      "Harvest celebration",
		ActivityDetails:     "Performed yearly at the district temple fair.",
		AlcoholFreeApproach: "Dance troupe members take a sobriety pledge.",
		StartYear:           2550,
		District:            "Renu",
		Amphoe:              "Renu Nakhon",
		Province:            "Nakhon Phanom",
		Type:                "Northeast",
	}
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores_record_with_document", func(t *testing.T) {
		repo := newFakeRepository()
		document := upload.File{
			Name: "oral-history.pdf",
			Open: func() (io.ReadCloser, error) {
				return io.NopCloser(strings.NewReader("payload")), nil
			},
		}

		record, err := newService(repo).Create(ctx, validInput(), nil, &document)

		require.NoError(t, err)
		require.NotNil(t, record.FileURL)
		assert.Contains(t, *record.FileURL, "ethnic-group-files/")
		assert.Equal(t, *record.FileURL, repo.files[record.ID])
	})

	t.Run("record_persists_without_files", func(t *testing.T) {
		repo := newFakeRepository()

		record, err := newService(repo).Create(ctx, validInput(), nil, nil)

		require.NoError(t, err)
		assert.Contains(t, repo.records, record.ID)
		assert.Nil(t, record.FileURL)
	})
}

func TestService_Get(t *testing.T) {
	repo := newFakeRepository()
	repo.records["a"] = &ethnic.EthnicGroup{ID: "a", ViewCount: 2}

	record, err := newService(repo).Get(context.Background(), "a")

	require.NoError(t, err)
	assert.Equal(t, 2, record.ViewCount)
	assert.Equal(t, 3, repo.records["a"].ViewCount)
}

func TestService_Update(t *testing.T) {
	repo := newFakeRepository()
	repo.records["a"] = &ethnic.EthnicGroup{ID: "a", Name: "Old"}

	record, err := newService(repo).Update(context.Background(), "a", validInput(), nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "Phu Thai of Renu Nakhon", record.Name)
}
