// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

package dashboard

import (
	"context"

	"github.com/prachasan/heritage-api/internal/listing"
)

// # Storage Contract

// Repository defines the aggregate queries behind the dashboard.
//
// Count and breakdown methods receive the filter already resolved for their
// kind: the caller applies the year to the start year or the signing date as
// appropriate.
type Repository interface {
	CountTraditions(ctx context.Context, filter listing.Filter) (int, error)
	CountCreativeActivities(ctx context.Context, filter listing.Filter) (int, error)
	CountEthnicGroups(ctx context.Context, filter listing.Filter) (int, error)
	CountPublicPolicies(ctx context.Context, filter listing.Filter) (int, error)

	TraditionCategoryBreakdown(ctx context.Context, filter listing.Filter) ([]CategoryCount, error)
	CreativeCategoryBreakdown(ctx context.Context, filter listing.Filter) ([]CategoryCount, error)
	EthnicCategoryBreakdown(ctx context.Context, filter listing.Filter) ([]CategoryCount, error)
	PolicyLevelBreakdown(ctx context.Context, filter listing.Filter) ([]LevelCount, error)

	Locations(ctx context.Context) (*Locations, error)
}
