// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

package dashboard_test

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prachasan/heritage-api/internal/content/dashboard"
	"github.com/prachasan/heritage-api/internal/listing"
	"github.com/prachasan/heritage-api/internal/platform/apperr"
)

// fakeRepository serves fixed aggregates and records the filters it saw.
type fakeRepository struct {
	policyCountFilter listing.Filter
	err               error
}

func (r *fakeRepository) CountTraditions(_ context.Context, _ listing.Filter) (int, error) {
	return 4, r.err
}

func (r *fakeRepository) CountCreativeActivities(_ context.Context, _ listing.Filter) (int, error) {
	return 3, r.err
}

func (r *fakeRepository) CountEthnicGroups(_ context.Context, _ listing.Filter) (int, error) {
	return 2, r.err
}

func (r *fakeRepository) CountPublicPolicies(_ context.Context, filter listing.Filter) (int, error) {
	r.policyCountFilter = filter
	return 1, r.err
}

func (r *fakeRepository) TraditionCategoryBreakdown(_ context.Context, _ listing.Filter) ([]dashboard.CategoryCount, error) {
	return []dashboard.CategoryCount{{Name: "Festivals", Count: 4}}, r.err
}

func (r *fakeRepository) CreativeCategoryBreakdown(_ context.Context, _ listing.Filter) ([]dashboard.CategoryCount, error) {
	return []dashboard.CategoryCount{{Name: "Crafts", Count: 3}}, r.err
}

func (r *fakeRepository) EthnicCategoryBreakdown(_ context.Context, _ listing.Filter) ([]dashboard.CategoryCount, error) {
	return []dashboard.CategoryCount{{Name: "Highland", Count: 2}}, r.err
}

func (r *fakeRepository) PolicyLevelBreakdown(_ context.Context, _ listing.Filter) ([]dashboard.LevelCount, error) {
	return []dashboard.LevelCount{{Level: "district", Count: 1}}, r.err
}

func (r *fakeRepository) Locations(_ context.Context) (*dashboard.Locations, error) {
	return &dashboard.Locations{
		Regions:   []string{"North", "Northeast"},
		Provinces: []string{"Chiang Mai", "Khon Kaen"},
	}, r.err
}

func TestQueryFromValues(t *testing.T) {
	t.Run("year_resolves_both_interpretations", func(t *testing.T) {
		query := dashboard.QueryFromValues(url.Values{"year": {"2564"}})

		require.NotNil(t, query.StartYearFilter.StartYear)
		assert.Equal(t, 2564, *query.StartYearFilter.StartYear)
		require.NotNil(t, query.SigningFilter.SignedFrom)
		assert.Equal(t, time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC), *query.SigningFilter.SignedFrom)
		require.NotNil(t, query.Filters.Year)
		assert.Equal(t, "2564", *query.Filters.Year)
	})

	t.Run("all_sentinels_are_omitted", func(t *testing.T) {
		query := dashboard.QueryFromValues(url.Values{
			"year": {"all"}, "region": {"all"}, "province": {"all"},
		})

		assert.Nil(t, query.StartYearFilter.StartYear)
		assert.Nil(t, query.Filters.Year)
		assert.Nil(t, query.Filters.Region)
		assert.Nil(t, query.Filters.Province)
	})
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("assembles_all_aggregates", func(t *testing.T) {
		repo := &fakeRepository{}
		query := dashboard.QueryFromValues(url.Values{"year": {"2564"}, "region": {"Northeast"}})

		result, err := dashboard.NewService(repo).Get(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, 4, result.Overview.TraditionCount)
		assert.Equal(t, 10, result.Overview.TotalCount)
		assert.Len(t, result.Charts.TraditionCategories, 1)
		assert.Len(t, result.Charts.PolicyLevels, 1)
		assert.Equal(t, []string{"North", "Northeast"}, result.Locations.Regions)
		require.NotNil(t, result.Filters.Region)
		assert.Equal(t, "Northeast", *result.Filters.Region)

		// Policies are filtered by signing date, not start year.
		assert.Nil(t, repo.policyCountFilter.StartYear)
		require.NotNil(t, repo.policyCountFilter.SignedFrom)
	})

	t.Run("storage_failure_is_wrapped", func(t *testing.T) {
		repo := &fakeRepository{err: errors.New("connection reset")}

		_, err := dashboard.NewService(repo).Get(ctx, dashboard.Query{})

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "Failed to fetch dashboard data", ae.Message)
	})
}
