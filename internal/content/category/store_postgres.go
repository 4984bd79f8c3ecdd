// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

package category

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prachasan/heritage-api/internal/platform/dberr"
)

// # PostgreSQL Repository

// postgresRepository implements [Repository] using pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed category store.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// ListTraditionCategories returns every tradition category with its record
// count, by name ascending.
func (repository *postgresRepository) ListTraditionCategories(context context.Context) ([]TraditionCategory, error) {
	query := `
		SELECT c.id, c.name, count(t.id)
		FROM ref.traditioncategory c
		LEFT JOIN content.tradition t ON t.categoryid = c.id
		GROUP BY c.id, c.name
		ORDER BY c.name ASC
	`

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tradition_categories")
	}
	defer rows.Close()

	categories := []TraditionCategory{}
	for rows.Next() {
		var c TraditionCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.TraditionCount); err != nil {
			return nil, dberr.Wrap(err, "scan_tradition_category")
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

/*
ListCreativeCategories returns the two-level creative category tree.

Each category carries its direct activity count and its subcategories with
their own counts, aggregated as JSON in a single round-trip.
*/
func (repository *postgresRepository) ListCreativeCategories(context context.Context) ([]CreativeCategory, error) {
	query := `
		SELECT
			c.id, c.name,
			(SELECT count(*) FROM content.creativeactivity a WHERE a.categoryid = c.id),
			COALESCE((
				SELECT json_agg(json_build_object(
					'id', s.id,
					'name', s.name,
					'activityCount',
					(SELECT count(*) FROM content.creativeactivity a WHERE a.subcategoryid = s.id)
				) ORDER BY s.name ASC)
				FROM ref.creativesubcategory s
				WHERE s.categoryid = c.id
			), '[]') AS subcategories
		FROM ref.creativecategory c
		ORDER BY c.name ASC
	`

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_creative_categories")
	}
	defer rows.Close()

	categories := []CreativeCategory{}
	for rows.Next() {
		var c CreativeCategory
		var subJSON []byte
		if err := rows.Scan(&c.ID, &c.Name, &c.ActivityCount, &subJSON); err != nil {
			return nil, dberr.Wrap(err, "scan_creative_category")
		}
		if err := json.Unmarshal(subJSON, &c.SubCategories); err != nil {
			return nil, fmt.Errorf("postgres: failed to unmarshal subcategories: %w", err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// ListEthnicCategories returns every ethnic-group category with its record
// count, by name ascending.
func (repository *postgresRepository) ListEthnicCategories(context context.Context) ([]EthnicCategory, error) {
	query := `
		SELECT c.id, c.name, count(g.id)
		FROM ref.ethniccategory c
		LEFT JOIN content.ethnicgroup g ON g.categoryid = c.id
		GROUP BY c.id, c.name
		ORDER BY c.name ASC
	`

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_ethnic_categories")
	}
	defer rows.Close()

	categories := []EthnicCategory{}
	for rows.Next() {
		var c EthnicCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.EthnicGroupCount); err != nil {
			return nil, dberr.Wrap(err, "scan_ethnic_category")
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}
