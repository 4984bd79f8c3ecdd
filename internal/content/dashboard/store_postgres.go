// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

package dashboard

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prachasan/heritage-api/internal/listing"
	"github.com/prachasan/heritage-api/internal/platform/dberr"
)

// # PostgreSQL Repository

// Per-table filter column mappings. Aliases match the queries below.
var (
	traditionColumns = listing.Columns{
		Region:    "r.type",
		Province:  "r.province",
		StartYear: "r.startyear",
	}
	creativeColumns = listing.Columns{
		Region:    "r.type",
		Province:  "r.province",
		StartYear: "r.startyear",
	}
	ethnicColumns = listing.Columns{
		Region:    "r.type",
		Province:  "r.province",
		StartYear: "r.startyear",
	}
	policyColumns = listing.Columns{
		Region:      "r.type",
		Province:    "r.province",
		SigningDate: "r.signingdate",
	}
)

// postgresRepository implements [Repository] using pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed dashboard store.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// # Counts

func (repository *postgresRepository) CountTraditions(context context.Context, filter listing.Filter) (int, error) {
	return repository.countRecords(context, "content.tradition", traditionColumns, filter, "count_traditions")
}

func (repository *postgresRepository) CountCreativeActivities(context context.Context, filter listing.Filter) (int, error) {
	return repository.countRecords(context, "content.creativeactivity", creativeColumns, filter, "count_creative_activities")
}

func (repository *postgresRepository) CountEthnicGroups(context context.Context, filter listing.Filter) (int, error) {
	return repository.countRecords(context, "content.ethnicgroup", ethnicColumns, filter, "count_ethnic_groups")
}

func (repository *postgresRepository) CountPublicPolicies(context context.Context, filter listing.Filter) (int, error) {
	return repository.countRecords(context, "content.publicpolicy", policyColumns, filter, "count_public_policies")
}

// countRecords runs the shared filtered count over one content table.
func (repository *postgresRepository) countRecords(context context.Context, table string, cols listing.Columns, filter listing.Filter, action string) (int, error) {
	query := fmt.Sprintf("SELECT count(*) FROM %s r WHERE 1 = 1", table)

	clause, args, _ := filter.Where(cols, 1)
	query += clause

	var total int
	if err := repository.pool.QueryRow(context, query, args...).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, action)
	}

	return total, nil
}

// # Breakdowns

func (repository *postgresRepository) TraditionCategoryBreakdown(context context.Context, filter listing.Filter) ([]CategoryCount, error) {
	return repository.categoryBreakdown(context,
		"ref.traditioncategory", "content.tradition", traditionColumns, filter, "tradition_category_breakdown")
}

func (repository *postgresRepository) CreativeCategoryBreakdown(context context.Context, filter listing.Filter) ([]CategoryCount, error) {
	return repository.categoryBreakdown(context,
		"ref.creativecategory", "content.creativeactivity", creativeColumns, filter, "creative_category_breakdown")
}

func (repository *postgresRepository) EthnicCategoryBreakdown(context context.Context, filter listing.Filter) ([]CategoryCount, error) {
	return repository.categoryBreakdown(context,
		"ref.ethniccategory", "content.ethnicgroup", ethnicColumns, filter, "ethnic_category_breakdown")
}

/*
categoryBreakdown counts the matching records of one content table per
category.

The filter lands inside the LEFT JOIN condition so categories with zero
matching records still appear with a zero count.
*/
func (repository *postgresRepository) categoryBreakdown(context context.Context, categoryTable, recordTable string, cols listing.Columns, filter listing.Filter, action string) ([]CategoryCount, error) {
	clause, args, _ := filter.Where(cols, 1)

	query := fmt.Sprintf(`
		SELECT c.name, count(r.id)
		FROM %s c
		LEFT JOIN %s r ON r.categoryid = c.id%s
		GROUP BY c.name
		ORDER BY c.name ASC
	`, categoryTable, recordTable, clause)

	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	counts := []CategoryCount{}
	for rows.Next() {
		var c CategoryCount
		if err := rows.Scan(&c.Name, &c.Count); err != nil {
			return nil, dberr.Wrap(err, action)
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}

// PolicyLevelBreakdown counts the matching policies per signing level.
func (repository *postgresRepository) PolicyLevelBreakdown(context context.Context, filter listing.Filter) ([]LevelCount, error) {
	query := "SELECT r.level, count(*) FROM content.publicpolicy r WHERE 1 = 1"

	clause, args, _ := filter.Where(policyColumns, 1)
	query += clause
	query += " GROUP BY r.level ORDER BY r.level ASC"

	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "policy_level_breakdown")
	}
	defer rows.Close()

	counts := []LevelCount{}
	for rows.Next() {
		var c LevelCount
		if err := rows.Scan(&c.Level, &c.Count); err != nil {
			return nil, dberr.Wrap(err, "policy_level_breakdown")
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}

// # Locations

// Locations returns the distinct regions and provinces present on any
// record of any kind, sorted ascending with blanks removed.
func (repository *postgresRepository) Locations(context context.Context) (*Locations, error) {
	locations := &Locations{Regions: []string{}, Provinces: []string{}}

	regionQuery := `
		SELECT DISTINCT type FROM (
			SELECT type FROM content.tradition
			UNION SELECT type FROM content.creativeactivity
			UNION SELECT type FROM content.ethnicgroup
			UNION SELECT type FROM content.publicpolicy
		) combined
		WHERE type <> ''
		ORDER BY type ASC
	`
	if err := repository.collectStrings(context, regionQuery, &locations.Regions); err != nil {
		return nil, dberr.Wrap(err, "list_regions")
	}

	provinceQuery := `
		SELECT DISTINCT province FROM (
			SELECT province FROM content.tradition
			UNION SELECT province FROM content.creativeactivity
			UNION SELECT province FROM content.ethnicgroup
			UNION SELECT province FROM content.publicpolicy
		) combined
		WHERE province <> ''
		ORDER BY province ASC
	`
	if err := repository.collectStrings(context, provinceQuery, &locations.Provinces); err != nil {
		return nil, dberr.Wrap(err, "list_provinces")
	}

	return locations, nil
}

// collectStrings scans a single-column query into dest.
func (repository *postgresRepository) collectStrings(context context.Context, query string, dest *[]string) error {
	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return err
		}
		*dest = append(*dest, value)
	}

	return rows.Err()
}
