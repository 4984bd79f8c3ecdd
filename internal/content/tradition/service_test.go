// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

package tradition_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prachasan/heritage-api/internal/content/media"
	"github.com/prachasan/heritage-api/internal/content/tradition"
	"github.com/prachasan/heritage-api/internal/listing"
	"github.com/prachasan/heritage-api/internal/platform/apperr"
	"github.com/prachasan/heritage-api/internal/platform/upload"
	"github.com/prachasan/heritage-api/pkg/pagination"
)

// fakeRepository implements tradition.Repository in memory.
type fakeRepository struct {
	records map[string]*tradition.Tradition
	images  map[string][]media.Image
	files   map[string]string

	listErr  error
	countErr error
	imageErr error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		records: map[string]*tradition.Tradition{},
		images:  map[string][]media.Image{},
		files:   map[string]string{},
	}
}

func (r *fakeRepository) List(_ context.Context, _ listing.Filter, _, _ int) ([]*tradition.Tradition, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*tradition.Tradition
	for _, record := range r.records {
		out = append(out, record)
	}
	return out, nil
}

func (r *fakeRepository) Count(_ context.Context, _ listing.Filter) (int, error) {
	return len(r.records), r.countErr
}

func (r *fakeRepository) FindByID(_ context.Context, id string) (*tradition.Tradition, error) {
	record, ok := r.records[id]
	if !ok {
		return nil, apperr.NotFound("Tradition")
	}
	copied := *record
	return &copied, nil
}

func (r *fakeRepository) IncrementViewCount(_ context.Context, id string) error {
	record, ok := r.records[id]
	if !ok {
		return apperr.NotFound("Tradition")
	}
	record.ViewCount++
	return nil
}

func (r *fakeRepository) Create(_ context.Context, record *tradition.Tradition) error {
	r.records[record.ID] = record
	return nil
}

func (r *fakeRepository) Update(_ context.Context, record *tradition.Tradition) error {
	if _, ok := r.records[record.ID]; !ok {
		return apperr.NotFound("Tradition")
	}
	r.records[record.ID] = record
	return nil
}

func (r *fakeRepository) AddImage(_ context.Context, recordID string, image media.Image) error {
	if r.imageErr != nil {
		return r.imageErr
	}
	r.images[recordID] = append(r.images[recordID], image)
	return nil
}

func (r *fakeRepository) SetPolicyFileURL(_ context.Context, recordID, url string) error {
	r.files[recordID] = url
	return nil
}

// fakeSaver records saved files without touching the disk.
type fakeSaver struct {
	saved   []string
	failOn  string
	saveErr error
}

func (s *fakeSaver) Save(_ context.Context, subdir string, file upload.File) (string, error) {
	if s.saveErr != nil || file.Name == s.failOn {
		if s.saveErr != nil {
			return "", s.saveErr
		}
		return "", errors.New("disk full")
	}
	url := "/uploads/" + subdir + "/" + file.Name
	s.saved = append(s.saved, url)
	return url, nil
}

func newService(repo *fakeRepository, saver *fakeSaver) *tradition.Service {
	return tradition.NewService(repo, saver, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func formFile(name string) upload.File {
	return upload.File{
		Name: name,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("payload")), nil
		},
	}
}

func validInput() tradition.Input {
	return tradition.Input{
		CategoryID:          "0191a0b0-0000-7000-8000-000000000001",
		Name:                "Songkran Water Blessing",
		District:            "Nai Mueang",
		Amphoe:              "Mueang",
		Province:            "Khon Kaen",
		Type:                "Northeast",
		History:             "Held every April since the temple was founded.",
		AlcoholFreeApproach: "Community pledge enforced by village elders.",
		StartYear:           2540,
	}
}

func TestService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("returns_page_and_meta", func(t *testing.T) {
		repo := newFakeRepository()
		repo.records["a"] = &tradition.Tradition{ID: "a"}

		records, meta, err := newService(repo, &fakeSaver{}).List(ctx, listing.Filter{}, pagination.Params{Page: 1, Limit: 10})

		require.NoError(t, err)
		assert.Len(t, records, 1)
		assert.Equal(t, 1, meta.Total)
		assert.Equal(t, 1, meta.TotalPages)
	})

	t.Run("wraps_storage_failure", func(t *testing.T) {
		repo := newFakeRepository()
		repo.listErr = errors.New("connection reset")

		_, _, err := newService(repo, &fakeSaver{}).List(ctx, listing.Filter{}, pagination.Params{Page: 1, Limit: 10})

		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "FETCH_FAILED", ae.Code)
		assert.Equal(t, "Failed to fetch traditions", ae.Message)
	})
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("returns_record_and_counts_view", func(t *testing.T) {
		repo := newFakeRepository()
		repo.records["a"] = &tradition.Tradition{ID: "a", ViewCount: 4}

		record, err := newService(repo, &fakeSaver{}).Get(ctx, "a")

		require.NoError(t, err)
		assert.Equal(t, 4, record.ViewCount)
		assert.Equal(t, 5, repo.records["a"].ViewCount)
	})

	t.Run("unknown_id_is_not_found", func(t *testing.T) {
		_, err := newService(newFakeRepository(), &fakeSaver{}).Get(ctx, "missing")

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, 404, ae.HTTPStatus)
	})
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores_record_with_files", func(t *testing.T) {
		repo := newFakeRepository()
		saver := &fakeSaver{}
		policy := formFile("policy.pdf")

		record, err := newService(repo, saver).Create(ctx, validInput(),
			[]upload.File{formFile("one.jpg"), formFile("two.jpg")}, &policy)

		require.NoError(t, err)
		assert.NotEmpty(t, record.ID)
		assert.Len(t, record.Images, 2)
		assert.Len(t, repo.images[record.ID], 2)
		require.NotNil(t, record.PolicyFileURL)
		assert.Contains(t, *record.PolicyFileURL, "tradition-policy-files/")
		assert.Equal(t, *record.PolicyFileURL, repo.files[record.ID])
	})

	t.Run("skips_failed_image_keeps_record", func(t *testing.T) {
		repo := newFakeRepository()
		saver := &fakeSaver{failOn: "broken.jpg"}

		record, err := newService(repo, saver).Create(ctx, validInput(),
			[]upload.File{formFile("broken.jpg"), formFile("good.jpg")}, nil)

		require.NoError(t, err)
		assert.Len(t, record.Images, 1)
		assert.Contains(t, record.Images[0].URL, "good.jpg")
	})

	t.Run("skips_unlinked_image", func(t *testing.T) {
		repo := newFakeRepository()
		repo.imageErr = errors.New("insert failed")

		record, err := newService(repo, &fakeSaver{}).Create(ctx, validInput(),
			[]upload.File{formFile("one.jpg")}, nil)

		require.NoError(t, err)
		assert.Empty(t, record.Images)
	})

	t.Run("record_survives_policy_file_failure", func(t *testing.T) {
		repo := newFakeRepository()
		saver := &fakeSaver{failOn: "policy.pdf"}
		policy := formFile("policy.pdf")

		record, err := newService(repo, saver).Create(ctx, validInput(), nil, &policy)

		require.NoError(t, err)
		assert.Nil(t, record.PolicyFileURL)
		assert.Empty(t, repo.files)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces_attributes", func(t *testing.T) {
		repo := newFakeRepository()
		repo.records["a"] = &tradition.Tradition{ID: "a", Name: "Old Name"}

		input := validInput()
		record, err := newService(repo, &fakeSaver{}).Update(ctx, "a", input, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, input.Name, record.Name)
	})

	t.Run("unknown_id_is_not_found", func(t *testing.T) {
		_, err := newService(newFakeRepository(), &fakeSaver{}).Update(ctx, "missing", validInput(), nil, nil)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, 404, ae.HTTPStatus)
	})
}
