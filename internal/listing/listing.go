// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

/*
Package listing implements the shared query pipeline behind every browsable
content collection.

All four record kinds expose the same listing behaviour: a dynamic filter
parsed from query parameters, page-based navigation, and a detail fetch that
bumps the record's view counter. This package holds that behaviour once, as
generic building blocks, so each content domain only supplies its storage
implementation.

# Filtering

A [Filter] carries only the dimensions the caller supplied. The sentinel
value "all" on region and province means "do not filter on this dimension"
and is treated the same as an absent parameter. The year parameter is a
Buddhist Era year; depending on the record kind it either matches the stored
start year directly or is converted to a Gregorian date range against the
signing date.
*/
package listing

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/prachasan/heritage-api/internal/platform/ctxutil"
	"github.com/prachasan/heritage-api/pkg/pagination"
	"github.com/prachasan/heritage-api/pkg/thaiyear"
)

// SentinelAll is the query-parameter value meaning "no filter on this
// dimension".
const SentinelAll = "all"

// YearMode selects how the year query parameter is applied to a record kind.
type YearMode int

const (
	// YearAsStartYear matches the Buddhist Era year against the record's
	// stored start year.
	YearAsStartYear YearMode = iota

	// YearAsSigningDate converts the Buddhist Era year to a half-open
	// Gregorian date range and matches it against the record's signing date.
	YearAsSigningDate
)

// # Filter

// Filter is the set of optional listing dimensions. A nil field means the
// dimension is not filtered.
type Filter struct {
	CategoryID    *string
	SubCategoryID *string
	Region        *string
	Province      *string

	// StartYear is set when the year parameter is applied in
	// [YearAsStartYear] mode. It stays in Buddhist Era.
	StartYear *int

	// SignedFrom and SignedUntil bound the signing date as a half-open
	// range [SignedFrom, SignedUntil) in [YearAsSigningDate] mode.
	SignedFrom  *time.Time
	SignedUntil *time.Time

	Level        *string
	HealthRegion *string
}

// FromQuery builds a [Filter] from URL query parameters.
//
// Absent parameters are omitted. The "all" sentinel on region and province is
// treated as absent. A year parameter that does not parse as an integer is
// dropped rather than coerced into a zero filter.
func FromQuery(values url.Values, mode YearMode) Filter {
	var filter Filter

	if v := values.Get("categoryId"); v != "" {
		filter.CategoryID = &v
	}
	if v := values.Get("subCategoryId"); v != "" {
		filter.SubCategoryID = &v
	}
	if v := values.Get("region"); v != "" && v != SentinelAll {
		filter.Region = &v
	}
	if v := values.Get("province"); v != "" && v != SentinelAll {
		filter.Province = &v
	}
	if v := values.Get("level"); v != "" {
		filter.Level = &v
	}
	if v := values.Get("healthRegion"); v != "" {
		filter.HealthRegion = &v
	}

	if raw := values.Get("year"); raw != "" && raw != SentinelAll {
		if year, err := strconv.Atoi(raw); err == nil {
			switch mode {
			case YearAsStartYear:
				filter.StartYear = &year
			case YearAsSigningDate:
				from, until := thaiyear.GregorianRange(year)
				filter.SignedFrom = &from
				filter.SignedUntil = &until
			}
		}
	}

	return filter
}

// Columns maps filter dimensions to the qualified column references of a
// concrete table. An empty mapping disables that dimension for the table.
type Columns struct {
	CategoryID    string
	SubCategoryID string
	Region        string
	Province      string
	StartYear     string
	SigningDate   string
	Level         string
	HealthRegion  string
}

// Where renders the filter as a conjunction of " AND <col> <op> $n"
// fragments, starting placeholder numbering at argIndex.
//
// It returns the SQL fragment, the bound arguments in placeholder order, and
// the next free placeholder index. Dimensions without a column mapping are
// skipped so the same [Filter] can serve tables with different shapes.
func (filter Filter) Where(cols Columns, argIndex int) (string, []any, int) {
	var clause strings.Builder
	var args []any

	equal := func(col string, value any) {
		if col == "" {
			return
		}
		clause.WriteString(fmt.Sprintf(" AND %s = $%d", col, argIndex))
		args = append(args, value)
		argIndex++
	}

	if filter.CategoryID != nil {
		equal(cols.CategoryID, *filter.CategoryID)
	}
	if filter.SubCategoryID != nil {
		equal(cols.SubCategoryID, *filter.SubCategoryID)
	}
	if filter.Region != nil {
		equal(cols.Region, *filter.Region)
	}
	if filter.Province != nil {
		equal(cols.Province, *filter.Province)
	}
	if filter.StartYear != nil {
		equal(cols.StartYear, *filter.StartYear)
	}
	if filter.Level != nil {
		equal(cols.Level, *filter.Level)
	}
	if filter.HealthRegion != nil {
		equal(cols.HealthRegion, *filter.HealthRegion)
	}

	// Half-open range on the signing date: inclusive lower, exclusive upper.
	if cols.SigningDate != "" {
		if filter.SignedFrom != nil {
			clause.WriteString(fmt.Sprintf(" AND %s >= $%d", cols.SigningDate, argIndex))
			args = append(args, *filter.SignedFrom)
			argIndex++
		}
		if filter.SignedUntil != nil {
			clause.WriteString(fmt.Sprintf(" AND %s < $%d", cols.SigningDate, argIndex))
			args = append(args, *filter.SignedUntil)
			argIndex++
		}
	}

	return clause.String(), args, argIndex
}

// # Paged Listing

// Lister is the storage contract for a filtered, paginated collection.
type Lister[T any] interface {
	List(ctx context.Context, filter Filter, limit, offset int) ([]*T, error)
	Count(ctx context.Context, filter Filter) (int, error)
}

/*
Page runs the count and fetch legs of a listing concurrently and assembles
the pagination metadata.

Both legs receive the identical filter; if either fails the first error is
returned and the sibling is cancelled through the group context. The data
slice is never nil so an empty page serializes as [] rather than null.
*/
func Page[T any](ctx context.Context, store Lister[T], filter Filter, params pagination.Params) ([]*T, pagination.Meta, error) {
	var (
		records []*T
		total   int
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var err error
		total, err = store.Count(groupCtx, filter)
		return err
	})

	group.Go(func() error {
		var err error
		records, err = store.List(groupCtx, filter, params.Limit, params.Offset())
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, pagination.Meta{}, err
	}

	if records == nil {
		records = []*T{}
	}

	return records, pagination.NewMeta(params.Page, params.Limit, total), nil
}

// # Detail Fetch

// Detailer is the storage contract for a single-record lookup with a view
// counter.
type Detailer[T any] interface {
	FindByID(ctx context.Context, id string) (*T, error)
	IncrementViewCount(ctx context.Context, id string) error
}

/*
FetchDetail loads one record and bumps its view counter.

The increment only runs after a successful load, so a missing record never
gains views. The returned record carries the count as it was when read; the
increment lands on the next fetch. A failed increment is logged and the
record is still returned.
*/
func FetchDetail[T any](ctx context.Context, store Detailer[T], id string) (*T, error) {
	record, err := store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := store.IncrementViewCount(ctx, id); err != nil {
		ctxutil.GetLogger(ctx).Warn("failed to increment view count",
			"record_id", id,
			"error", err,
		)
	}

	return record, nil
}
