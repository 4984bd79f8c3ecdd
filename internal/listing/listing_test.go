// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

package listing_test

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prachasan/heritage-api/internal/listing"
	"github.com/prachasan/heritage-api/internal/platform/apperr"
	"github.com/prachasan/heritage-api/pkg/pagination"
)

/*
TestFromQuery_Sentinels tests that absent parameters and the "all" sentinel
produce no filter dimension.
*/
func TestFromQuery_Sentinels(t *testing.T) {
	tests := []struct {
		name  string
		query string
		check func(t *testing.T, f listing.Filter)
	}{
		{
			"empty_query", "",
			func(t *testing.T, f listing.Filter) {
				assert.Equal(t, listing.Filter{}, f)
			},
		},
		{
			"region_all_is_omitted", "region=all&province=all",
			func(t *testing.T, f listing.Filter) {
				assert.Nil(t, f.Region)
				assert.Nil(t, f.Province)
			},
		},
		{
			"region_value_is_kept", "region=North&province=Chiang+Mai",
			func(t *testing.T, f listing.Filter) {
				require.NotNil(t, f.Region)
				assert.Equal(t, "North", *f.Region)
				require.NotNil(t, f.Province)
				assert.Equal(t, "Chiang Mai", *f.Province)
			},
		},
		{
			"category_and_subcategory", "categoryId=c1&subCategoryId=s1",
			func(t *testing.T, f listing.Filter) {
				require.NotNil(t, f.CategoryID)
				assert.Equal(t, "c1", *f.CategoryID)
				require.NotNil(t, f.SubCategoryID)
				assert.Equal(t, "s1", *f.SubCategoryID)
			},
		},
		{
			"level_and_health_region", "level=provincial&healthRegion=7",
			func(t *testing.T, f listing.Filter) {
				require.NotNil(t, f.Level)
				assert.Equal(t, "provincial", *f.Level)
				require.NotNil(t, f.HealthRegion)
				assert.Equal(t, "7", *f.HealthRegion)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			tt.check(t, listing.FromQuery(values, listing.YearAsStartYear))
		})
	}
}

/*
TestFromQuery_Year tests both year interpretations and the handling of
unparseable values.
*/
func TestFromQuery_Year(t *testing.T) {
	t.Run("start_year_mode", func(t *testing.T) {
		f := listing.FromQuery(url.Values{"year": {"2564"}}, listing.YearAsStartYear)

		require.NotNil(t, f.StartYear)
		assert.Equal(t, 2564, *f.StartYear)
		assert.Nil(t, f.SignedFrom)
		assert.Nil(t, f.SignedUntil)
	})

	t.Run("signing_date_mode", func(t *testing.T) {
		f := listing.FromQuery(url.Values{"year": {"2564"}}, listing.YearAsSigningDate)

		require.NotNil(t, f.SignedFrom)
		require.NotNil(t, f.SignedUntil)
		assert.Equal(t, time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC), *f.SignedFrom)
		assert.Equal(t, time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC), *f.SignedUntil)
		assert.Nil(t, f.StartYear)
	})

	t.Run("unparseable_year_is_dropped", func(t *testing.T) {
		f := listing.FromQuery(url.Values{"year": {"abc"}}, listing.YearAsStartYear)

		assert.Nil(t, f.StartYear)
	})

	t.Run("year_all_is_dropped", func(t *testing.T) {
		f := listing.FromQuery(url.Values{"year": {"all"}}, listing.YearAsSigningDate)

		assert.Nil(t, f.SignedFrom)
		assert.Nil(t, f.SignedUntil)
	})
}

/*
TestFilter_Where tests SQL fragment rendering, placeholder numbering, and
the skipping of unmapped columns.
*/
func TestFilter_Where(t *testing.T) {
	cols := listing.Columns{
		CategoryID: "r.categoryid",
		Region:     "r.type",
		Province:   "r.province",
		StartYear:  "r.startyear",
	}

	t.Run("empty_filter", func(t *testing.T) {
		clause, args, next := listing.Filter{}.Where(cols, 1)

		assert.Empty(t, clause)
		assert.Empty(t, args)
		assert.Equal(t, 1, next)
	})

	t.Run("numbering_continues_from_arg_index", func(t *testing.T) {
		region := "North"
		year := 2564

		clause, args, next := listing.Filter{Region: &region, StartYear: &year}.Where(cols, 3)

		assert.Equal(t, " AND r.type = $3 AND r.startyear = $4", clause)
		assert.Equal(t, []any{"North", 2564}, args)
		assert.Equal(t, 5, next)
	})

	t.Run("unmapped_dimension_is_skipped", func(t *testing.T) {
		sub := "s1"
		region := "South"

		clause, args, next := listing.Filter{SubCategoryID: &sub, Region: &region}.Where(cols, 1)

		assert.Equal(t, " AND r.type = $1", clause)
		assert.Equal(t, []any{"South"}, args)
		assert.Equal(t, 2, next)
	})

	t.Run("signing_date_half_open_range", func(t *testing.T) {
		from := time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)
		until := time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)
		dateCols := listing.Columns{SigningDate: "p.signingdate"}

		clause, args, next := listing.Filter{SignedFrom: &from, SignedUntil: &until}.Where(dateCols, 1)

		assert.Equal(t, " AND p.signingdate >= $1 AND p.signingdate < $2", clause)
		assert.Equal(t, []any{from, until}, args)
		assert.Equal(t, 3, next)
	})
}

// fakeStore implements both listing storage contracts in memory.
type fakeStore struct {
	records []*record
	total   int

	listErr      error
	countErr     error
	findErr      error
	incrementErr error

	listFilter  listing.Filter
	countFilter listing.Filter
	increments  int
}

type record struct {
	ID        string
	ViewCount int
}

func (s *fakeStore) List(_ context.Context, filter listing.Filter, _, _ int) ([]*record, error) {
	s.listFilter = filter
	return s.records, s.listErr
}

func (s *fakeStore) Count(_ context.Context, filter listing.Filter) (int, error) {
	s.countFilter = filter
	return s.total, s.countErr
}

func (s *fakeStore) FindByID(_ context.Context, id string) (*record, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	for _, r := range s.records {
		if r.ID == id {
			copied := *r
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("Record")
}

func (s *fakeStore) IncrementViewCount(_ context.Context, id string) error {
	if s.incrementErr != nil {
		return s.incrementErr
	}
	for _, r := range s.records {
		if r.ID == id {
			r.ViewCount++
			s.increments++
			return nil
		}
	}
	return apperr.NotFound("Record")
}

/*
TestPage tests the concurrent count-and-fetch assembly.
*/
func TestPage(t *testing.T) {
	ctx := context.Background()

	t.Run("assembles_records_and_meta", func(t *testing.T) {
		store := &fakeStore{
			records: []*record{{ID: "a"}, {ID: "b"}},
			total:   25,
		}
		region := "North"
		filter := listing.Filter{Region: &region}

		records, meta, err := listing.Page(ctx, store, filter, pagination.Params{Page: 2, Limit: 10})

		require.NoError(t, err)
		assert.Len(t, records, 2)
		assert.Equal(t, pagination.Meta{Page: 2, Limit: 10, Total: 25, TotalPages: 3}, meta)

		// Both legs must see the identical filter.
		assert.Equal(t, filter, store.listFilter)
		assert.Equal(t, filter, store.countFilter)
	})

	t.Run("empty_page_is_not_nil", func(t *testing.T) {
		store := &fakeStore{total: 0}

		records, meta, err := listing.Page(ctx, store, listing.Filter{}, pagination.Params{Page: 1, Limit: 10})

		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
		assert.Equal(t, 0, meta.TotalPages)
	})

	t.Run("count_error_propagates", func(t *testing.T) {
		store := &fakeStore{countErr: errors.New("count failed")}

		_, _, err := listing.Page(ctx, store, listing.Filter{}, pagination.Params{Page: 1, Limit: 10})

		assert.ErrorContains(t, err, "count failed")
	})

	t.Run("list_error_propagates", func(t *testing.T) {
		store := &fakeStore{listErr: errors.New("list failed")}

		_, _, err := listing.Page(ctx, store, listing.Filter{}, pagination.Params{Page: 1, Limit: 10})

		assert.ErrorContains(t, err, "list failed")
	})
}

/*
TestFetchDetail tests the read-then-increment ordering of the detail fetch.
*/
func TestFetchDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("returns_pre_increment_count", func(t *testing.T) {
		store := &fakeStore{records: []*record{{ID: "a", ViewCount: 7}}}

		got, err := listing.FetchDetail(ctx, store, "a")

		require.NoError(t, err)
		assert.Equal(t, 7, got.ViewCount)
		assert.Equal(t, 8, store.records[0].ViewCount)
		assert.Equal(t, 1, store.increments)
	})

	t.Run("missing_record_does_not_increment", func(t *testing.T) {
		store := &fakeStore{records: []*record{{ID: "a"}}}

		_, err := listing.FetchDetail(ctx, store, "missing")

		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, 404, ae.HTTPStatus)
		assert.Equal(t, 0, store.increments)
	})

	t.Run("increment_failure_is_tolerated", func(t *testing.T) {
		store := &fakeStore{
			records:      []*record{{ID: "a", ViewCount: 3}},
			incrementErr: errors.New("update failed"),
		}

		got, err := listing.FetchDetail(ctx, store, "a")

		require.NoError(t, err)
		assert.Equal(t, 3, got.ViewCount)
	})

	t.Run("find_error_propagates", func(t *testing.T) {
		store := &fakeStore{findErr: errors.New("query failed")}

		_, err := listing.FetchDetail(ctx, store, "a")

		assert.ErrorContains(t, err, "query failed")
	})
}
