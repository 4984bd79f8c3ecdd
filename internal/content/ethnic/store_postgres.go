// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

package ethnic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prachasan/heritage-api/internal/content/media"
	"github.com/prachasan/heritage-api/internal/listing"
	"github.com/prachasan/heritage-api/internal/platform/apperr"
	"github.com/prachasan/heritage-api/internal/platform/database/schema"
	"github.com/prachasan/heritage-api/internal/platform/dberr"
)

// # PostgreSQL Repository

// filterColumns maps the shared listing dimensions onto content.ethnicgroup.
var filterColumns = listing.Columns{
	CategoryID: "g.categoryid",
	Region:     "g.type",
	Province:   "g.province",
	StartYear:  "g.startyear",
}

// postgresRepository implements [Repository] using pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed ethnic-group store.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

const selectClause = `
	SELECT
		g.id, g.categoryid, g.name, g.history, g.activityname, g.activityorigin,
		g.activitydetails, g.alcoholfreeapproach, g.results, g.startyear,
		g.district, g.amphoe, g.province, g.village, g.type, g.zipcode,
		g.districtcode, g.amphoecode, g.provincecode, g.videolink, g.fileurl,
		g.viewcount, g.createdat, g.updatedat,
		c.id, c.name,
`

const fromClause = `
	FROM content.ethnicgroup g
	JOIN ref.ethniccategory c ON c.id = g.categoryid
`

// List returns a filtered slice of ethnic groups ordered by newest first,
// each with its category and at most one preview image.
func (repository *postgresRepository) List(context context.Context, filter listing.Filter, limit, offset int) ([]*EthnicGroup, error) {
	query := selectClause + `
		COALESCE((
			SELECT json_agg(json_build_object('id', i.id, 'url', i.url))
			FROM (
				SELECT id, url FROM content.image
				WHERE ethnicgroupid = g.id
				ORDER BY createdat ASC
				LIMIT 1
			) i
		), '[]') AS images
	` + fromClause + " WHERE 1 = 1"

	clause, args, argIndex := filter.Where(filterColumns, 1)
	query += clause
	query += fmt.Sprintf(" ORDER BY g.createdat DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_ethnic_groups")
	}
	defer rows.Close()

	var records []*EthnicGroup
	for rows.Next() {
		record, err := scanGroup(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_ethnic_group")
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_ethnic_groups")
	}

	return records, nil
}

// Count returns the number of ethnic groups matching the filter.
func (repository *postgresRepository) Count(context context.Context, filter listing.Filter) (int, error) {
	query := "SELECT count(*) FROM content.ethnicgroup g WHERE 1 = 1"

	clause, args, _ := filter.Where(filterColumns, 1)
	query += clause

	var total int
	if err := repository.pool.QueryRow(context, query, args...).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_ethnic_groups")
	}

	return total, nil
}

// FindByID returns one ethnic group with its category and every image.
func (repository *postgresRepository) FindByID(context context.Context, id string) (*EthnicGroup, error) {
	query := selectClause + `
		COALESCE((
			SELECT json_agg(json_build_object('id', i.id, 'url', i.url) ORDER BY i.createdat ASC)
			FROM content.image i
			WHERE i.ethnicgroupid = g.id
		), '[]') AS images
	` + fromClause + " WHERE g.id = $1"

	record, err := scanGroup(repository.pool.QueryRow(context, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Ethnic group")
		}
		return nil, dberr.Wrap(err, "get_ethnic_group")
	}

	return record, nil
}

// IncrementViewCount adds one view to an ethnic group.
func (repository *postgresRepository) IncrementViewCount(context context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = %s + 1 WHERE %s = $1`,
		schema.ContentEthnicGroup.Table, schema.ContentEthnicGroup.ViewCount,
		schema.ContentEthnicGroup.ViewCount, schema.ContentEthnicGroup.ID,
	)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "increment_ethnic_group_views")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Ethnic group")
	}

	return nil
}

// Create inserts a new ethnic group and hydrates the generated timestamps.
func (repository *postgresRepository) Create(context context.Context, record *EthnicGroup) error {
	g := schema.ContentEthnicGroup
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING %s, %s, %s
	`,
		g.Table, g.ID, g.CategoryID, g.Name, g.History, g.ActivityName, g.ActivityOrigin,
		g.ActivityDetails, g.AlcoholFreeApproach, g.Results, g.StartYear, g.District,
		g.Amphoe, g.Province, g.Village, g.Type, g.Zipcode, g.DistrictCode, g.AmphoeCode,
		g.ProvinceCode, g.VideoLink,
		g.ViewCount, g.CreatedAt, g.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		record.ID, record.CategoryID, record.Name, record.History, record.ActivityName,
		record.ActivityOrigin, record.ActivityDetails, record.AlcoholFreeApproach,
		record.Results, record.StartYear, record.District, record.Amphoe, record.Province,
		record.Village, record.Type, record.Zipcode, record.DistrictCode, record.AmphoeCode,
		record.ProvinceCode, record.VideoLink,
	).Scan(&record.ViewCount, &record.CreatedAt, &record.UpdatedAt)

	return dberr.Wrap(err, "create_ethnic_group")
}

// Update replaces every mutable attribute of an ethnic group.
func (repository *postgresRepository) Update(context context.Context, record *EthnicGroup) error {
	g := schema.ContentEthnicGroup
	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9,
			%s = $10, %s = $11, %s = $12, %s = $13, %s = $14, %s = $15, %s = $16,
			%s = $17, %s = $18, %s = $19, %s = $20, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		g.Table, g.CategoryID, g.Name, g.History, g.ActivityName, g.ActivityOrigin,
		g.ActivityDetails, g.AlcoholFreeApproach, g.Results, g.StartYear, g.District,
		g.Amphoe, g.Province, g.Village, g.Type, g.Zipcode, g.DistrictCode, g.AmphoeCode,
		g.ProvinceCode, g.VideoLink, g.UpdatedAt,
		g.ID, g.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		record.ID, record.CategoryID, record.Name, record.History, record.ActivityName,
		record.ActivityOrigin, record.ActivityDetails, record.AlcoholFreeApproach,
		record.Results, record.StartYear, record.District, record.Amphoe, record.Province,
		record.Village, record.Type, record.Zipcode, record.DistrictCode, record.AmphoeCode,
		record.ProvinceCode, record.VideoLink,
	).Scan(&record.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound("Ethnic group")
	}

	return dberr.Wrap(err, "update_ethnic_group")
}

// AddImage links a stored image file to an ethnic group.
func (repository *postgresRepository) AddImage(context context.Context, recordID string, image media.Image) error {
	i := schema.ContentImage
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
		i.Table, i.ID, i.URL, i.EthnicGroupID,
	)

	_, err := repository.pool.Exec(context, query, image.ID, image.URL, recordID)
	return dberr.Wrap(err, "add_ethnic_group_image")
}

// SetFileURL records the stored supporting-document location.
func (repository *postgresRepository) SetFileURL(context context.Context, recordID, url string) error {
	g := schema.ContentEthnicGroup
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
		g.Table, g.FileURL, g.ID,
	)

	_, err := repository.pool.Exec(context, query, recordID, url)
	return dberr.Wrap(err, "set_ethnic_group_file")
}

// scanGroup hydrates one ethnic-group row shared by List and FindByID.
func scanGroup(row pgx.Row) (*EthnicGroup, error) {
	record := &EthnicGroup{}
	category := &Category{}
	var imagesJSON []byte

	err := row.Scan(
		&record.ID, &record.CategoryID, &record.Name, &record.History,
		&record.ActivityName, &record.ActivityOrigin, &record.ActivityDetails,
		&record.AlcoholFreeApproach, &record.Results, &record.StartYear,
		&record.District, &record.Amphoe, &record.Province, &record.Village,
		&record.Type, &record.Zipcode, &record.DistrictCode, &record.AmphoeCode,
		&record.ProvinceCode, &record.VideoLink, &record.FileURL, &record.ViewCount,
		&record.CreatedAt, &record.UpdatedAt,
		&category.ID, &category.Name,
		&imagesJSON,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(imagesJSON, &record.Images); err != nil {
		return nil, fmt.Errorf("postgres: failed to unmarshal ethnic group images: %w", err)
	}
	record.Category = category

	return record, nil
}
