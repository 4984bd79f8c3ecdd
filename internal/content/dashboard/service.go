// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

package dashboard

import (
	"context"
	"net/url"

	"golang.org/x/sync/errgroup"

	"github.com/prachasan/heritage-api/internal/listing"
	"github.com/prachasan/heritage-api/internal/platform/apperr"
)

// Query carries the dashboard filter in both year interpretations, plus the
// raw values echoed back to the client.
type Query struct {
	// StartYearFilter applies the year to the stored start year.
	StartYearFilter listing.Filter
	// SigningFilter applies the year to the signing date range.
	SigningFilter listing.Filter

	Filters Filters
}

// QueryFromValues builds a [Query] from URL query parameters, honouring the
// same sentinel and fail-closed rules as the listing endpoints.
func QueryFromValues(values url.Values) Query {
	startFilter := listing.FromQuery(values, listing.YearAsStartYear)
	signingFilter := listing.FromQuery(values, listing.YearAsSigningDate)

	filters := Filters{
		Region:   startFilter.Region,
		Province: startFilter.Province,
	}
	if year := values.Get("year"); year != "" && year != listing.SentinelAll {
		filters.Year = &year
	}

	return Query{
		StartYearFilter: startFilter,
		SigningFilter:   signingFilter,
		Filters:         filters,
	}
}

// # Service Layer

// Service assembles the dashboard aggregates.
type Service struct {
	repo Repository
}

// NewService constructs a new [Service].
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

/*
Get computes every dashboard aggregate under the given filter.

The nine underlying queries fan out concurrently; the first failure cancels
the rest and surfaces as a single fetch error.
*/
func (service *Service) Get(context context.Context, query Query) (*Dashboard, error) {
	dashboard := &Dashboard{
		Charts: Charts{
			TraditionCategories: []CategoryCount{},
			CreativeCategories:  []CategoryCount{},
			EthnicCategories:    []CategoryCount{},
			PolicyLevels:        []LevelCount{},
		},
		Locations: Locations{Regions: []string{}, Provinces: []string{}},
		Filters:   query.Filters,
	}

	group, groupCtx := errgroup.WithContext(context)

	// Overview counts
	group.Go(func() error {
		count, err := service.repo.CountTraditions(groupCtx, query.StartYearFilter)
		dashboard.Overview.TraditionCount = count
		return err
	})
	group.Go(func() error {
		count, err := service.repo.CountCreativeActivities(groupCtx, query.StartYearFilter)
		dashboard.Overview.CreativeActivityCount = count
		return err
	})
	group.Go(func() error {
		count, err := service.repo.CountEthnicGroups(groupCtx, query.StartYearFilter)
		dashboard.Overview.EthnicGroupCount = count
		return err
	})
	group.Go(func() error {
		count, err := service.repo.CountPublicPolicies(groupCtx, query.SigningFilter)
		dashboard.Overview.PublicPolicyCount = count
		return err
	})

	// Chart breakdowns
	group.Go(func() error {
		counts, err := service.repo.TraditionCategoryBreakdown(groupCtx, query.StartYearFilter)
		if err == nil {
			dashboard.Charts.TraditionCategories = counts
		}
		return err
	})
	group.Go(func() error {
		counts, err := service.repo.CreativeCategoryBreakdown(groupCtx, query.StartYearFilter)
		if err == nil {
			dashboard.Charts.CreativeCategories = counts
		}
		return err
	})
	group.Go(func() error {
		counts, err := service.repo.EthnicCategoryBreakdown(groupCtx, query.StartYearFilter)
		if err == nil {
			dashboard.Charts.EthnicCategories = counts
		}
		return err
	})
	group.Go(func() error {
		counts, err := service.repo.PolicyLevelBreakdown(groupCtx, query.SigningFilter)
		if err == nil {
			dashboard.Charts.PolicyLevels = counts
		}
		return err
	})

	// Location lookups
	group.Go(func() error {
		locations, err := service.repo.Locations(groupCtx)
		if err == nil {
			dashboard.Locations = *locations
		}
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, apperr.FetchFailed("dashboard data", err)
	}

	dashboard.Overview.TotalCount = dashboard.Overview.TraditionCount +
		dashboard.Overview.CreativeActivityCount +
		dashboard.Overview.EthnicGroupCount +
		dashboard.Overview.PublicPolicyCount

	return dashboard, nil
}
