// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

package policy_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prachasan/heritage-api/internal/content/media"
	"github.com/prachasan/heritage-api/internal/content/policy"
	"github.com/prachasan/heritage-api/internal/listing"
	"github.com/prachasan/heritage-api/internal/platform/apperr"
	"github.com/prachasan/heritage-api/internal/platform/upload"
	"github.com/prachasan/heritage-api/pkg/pagination"
)

// fakeRepository implements policy.Repository in memory.
type fakeRepository struct {
	records    map[string]*policy.PublicPolicy
	images     map[string][]media.Image
	files      map[string]string
	lastFilter listing.Filter
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		records: map[string]*policy.PublicPolicy{},
		images:  map[string][]media.Image{},
		files:   map[string]string{},
	}
}

func (r *fakeRepository) List(_ context.Context, filter listing.Filter, _, _ int) ([]*policy.PublicPolicy, error) {
	r.lastFilter = filter
	var out []*policy.PublicPolicy
	for _, record := range r.records {
		out = append(out, record)
	}
	return out, nil
}

func (r *fakeRepository) Count(_ context.Context, _ listing.Filter) (int, error) {
	return len(r.records), nil
}

func (r *fakeRepository) FindByID(_ context.Context, id string) (*policy.PublicPolicy, error) {
	record, ok := r.records[id]
	if !ok {
		return nil, apperr.NotFound("Public policy")
	}
	copied := *record
	return &copied, nil
}

func (r *fakeRepository) IncrementViewCount(_ context.Context, id string) error {
	record, ok := r.records[id]
	if !ok {
		return apperr.NotFound("Public policy")
	}
	record.ViewCount++
	return nil
}

func (r *fakeRepository) Create(_ context.Context, record *policy.PublicPolicy) error {
	r.records[record.ID] = record
	return nil
}

func (r *fakeRepository) Update(_ context.Context, record *policy.PublicPolicy) error {
	if _, ok := r.records[record.ID]; !ok {
		return apperr.NotFound("Public policy")
	}
	r.records[record.ID] = record
	return nil
}

func (r *fakeRepository) AddImage(_ context.Context, recordID string, image media.Image) error {
	r.images[recordID] = append(r.images[recordID], image)
	return nil
}

func (r *fakeRepository) SetPolicyFileURL(_ context.Context, recordID, url string) error {
	r.files[recordID] = url
	return nil
}

// fakeSaver records saved files without touching the disk.
type fakeSaver struct{}

func (fakeSaver) Save(_ context.Context, subdir string, file upload.File) (string, error) {
	return "/uploads/" + subdir + "/" + file.Name, nil
}

func newService(repo *fakeRepository) *policy.Service {
	return policy.NewService(repo, fakeSaver{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func validInput() policy.Input {
	return policy.Input{
		Name:        "Alcohol-free temple fairs of Tambon Ban Phai",
		SigningDate: time.Date(2021, time.June, 15, 0, 0, 0, 0, time.UTC),
		Level:       policy.LevelSubDistrict,
		District:    "Ban Phai",
		Amphoe:      "Ban Phai",
		Province:    "Khon Kaen",
		Type:        "Northeast",
		Content:     []string{"No alcohol sold on temple grounds", "Signage at every entrance"},
		Summary:     "Signed by the sub-district administrative organization.",
	}
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores_record_with_signed_document", func(t *testing.T) {
		repo := newFakeRepository()
		document := upload.File{
			Name: "signed-policy.pdf",
			Open: func() (io.ReadCloser, error) {
				return io.NopCloser(strings.NewReader("payload")), nil
			},
		}

		record, err := newService(repo).Create(ctx, validInput(), nil, &document)

		require.NoError(t, err)
		assert.Len(t, record.Content, 2)
		require.NotNil(t, record.PolicyFileURL)
		assert.Contains(t, *record.PolicyFileURL, "public-policy-files/")
		assert.Equal(t, *record.PolicyFileURL, repo.files[record.ID])
	})

	t.Run("nil_content_becomes_empty_slice", func(t *testing.T) {
		input := validInput()
		input.Content = nil

		record, err := newService(newFakeRepository()).Create(ctx, input, nil, nil)

		require.NoError(t, err)
		assert.NotNil(t, record.Content)
		assert.Empty(t, record.Content)
	})
}

func TestService_List_PassesSigningRange(t *testing.T) {
	repo := newFakeRepository()
	from := time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)
	filter := listing.Filter{SignedFrom: &from, SignedUntil: &until}

	_, _, err := newService(repo).List(context.Background(), filter, pagination.Params{Page: 1, Limit: 10})

	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.SignedFrom)
	assert.Equal(t, from, *repo.lastFilter.SignedFrom)
	require.NotNil(t, repo.lastFilter.SignedUntil)
	assert.Equal(t, until, *repo.lastFilter.SignedUntil)
}

func TestService_Get(t *testing.T) {
	repo := newFakeRepository()
	repo.records["a"] = &policy.PublicPolicy{ID: "a", ViewCount: 11}

	record, err := newService(repo).Get(context.Background(), "a")

	require.NoError(t, err)
	assert.Equal(t, 11, record.ViewCount)
	assert.Equal(t, 12, repo.records["a"].ViewCount)
}
