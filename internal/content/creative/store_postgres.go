// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

package creative

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

// filterColumns maps the shared listing dimensions onto content.creativeactivity.
var filterColumns = listing.Columns{
	CategoryID:    "a.categoryid",
	SubCategoryID: "a.subcategoryid",
	Region:        "a.type",
	Province:      "a.province",
	StartYear:     "a.startyear",
}

// postgresRepository implements [Repository] using pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed creative-activity store.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// selectClause is shared by List and FindByID; only the image aggregation
// differs between the two.
const selectClause = `
	SELECT
		a.id, a.categoryid, a.subcategoryid, a.name, a.district, a.amphoe, a.province,
		a.village, a.type, a.zipcode, a.districtcode, a.amphoecode, a.provincecode,
		a.coordinatorname, a.phone, a.description, a.summary, a.results, a.startyear,
		a.videolink, a.reportfileurl, a.viewcount, a.createdat, a.updatedat,
		c.id, c.name, s.id, s.name,
`

const fromClause = `
	FROM content.creativeactivity a
	JOIN ref.creativecategory c ON c.id = a.categoryid
	JOIN ref.creativesubcategory s ON s.id = a.subcategoryid
`

// List returns a filtered slice of activities ordered by newest first, each
// with its categories and at most one preview image.
func (repository *postgresRepository) List(context context.Context, filter listing.Filter, limit, offset int) ([]*CreativeActivity, error) {
	query := selectClause + `
		COALESCE((
			SELECT json_agg(json_build_object('id', i.id, 'url', i.url))
			FROM (
				SELECT id, url FROM content.image
				WHERE creativeactivityid = a.id
				ORDER BY createdat ASC
				LIMIT 1
			) i
		), '[]') AS images
	` + fromClause + " WHERE 1 = 1"

	clause, args, argIndex := filter.Where(filterColumns, 1)
	query += clause
	query += fmt.Sprintf(" ORDER BY a.createdat DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_creative_activities")
	}
	defer rows.Close()

	var records []*CreativeActivity
	for rows.Next() {
		record, err := scanActivity(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_creative_activity")
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_creative_activities")
	}

	return records, nil
}

// Count returns the number of activities matching the filter.
func (repository *postgresRepository) Count(context context.Context, filter listing.Filter) (int, error) {
	query := "SELECT count(*) FROM content.creativeactivity a WHERE 1 = 1"

	clause, args, _ := filter.Where(filterColumns, 1)
	query += clause

	var total int
	if err := repository.pool.QueryRow(context, query, args...).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_creative_activities")
	}

	return total, nil
}

// FindByID returns one activity with its categories and every image.
func (repository *postgresRepository) FindByID(context context.Context, id string) (*CreativeActivity, error) {
	query := selectClause + `
		COALESCE((
			SELECT json_agg(json_build_object('id', i.id, 'url', i.url) ORDER BY i.createdat ASC)
			FROM content.image i
			WHERE i.creativeactivityid = a.id
		), '[]') AS images
	` + fromClause + " WHERE a.id = $1"

	record, err := scanActivity(repository.pool.QueryRow(context, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Creative activity")
		}
		return nil, dberr.Wrap(err, "get_creative_activity")
	}

	return record, nil
}

// IncrementViewCount adds one view to an activity.
func (repository *postgresRepository) IncrementViewCount(context context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = %s + 1 WHERE %s = $1`,
		schema.ContentCreativeActivity.Table, schema.ContentCreativeActivity.ViewCount,
		schema.ContentCreativeActivity.ViewCount, schema.ContentCreativeActivity.ID,
	)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "increment_creative_activity_views")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Creative activity")
	}

	return nil
}

// Create inserts a new activity and hydrates the generated timestamps.
func (repository *postgresRepository) Create(context context.Context, record *CreativeActivity) error {
	a := schema.ContentCreativeActivity
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING %s, %s, %s
	`,
		a.Table, a.ID, a.CategoryID, a.SubCategoryID, a.Name, a.District, a.Amphoe,
		a.Province, a.Village, a.Type, a.Zipcode, a.DistrictCode, a.AmphoeCode,
		a.ProvinceCode, a.CoordinatorName, a.Phone, a.Description, a.Summary,
		a.Results, a.StartYear, a.VideoLink,
		a.ViewCount, a.CreatedAt, a.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		record.ID, record.CategoryID, record.SubCategoryID, record.Name, record.District,
		record.Amphoe, record.Province, record.Village, record.Type, record.Zipcode,
		record.DistrictCode, record.AmphoeCode, record.ProvinceCode, record.CoordinatorName,
		record.Phone, record.Description, record.Summary, record.Results, record.StartYear,
		record.VideoLink,
	).Scan(&record.ViewCount, &record.CreatedAt, &record.UpdatedAt)

	return dberr.Wrap(err, "create_creative_activity")
}

// Update replaces every mutable attribute of an activity.
func (repository *postgresRepository) Update(context context.Context, record *CreativeActivity) error {
	a := schema.ContentCreativeActivity
	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9,
			%s = $10, %s = $11, %s = $12, %s = $13, %s = $14, %s = $15, %s = $16,
			%s = $17, %s = $18, %s = $19, %s = $20, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		a.Table, a.CategoryID, a.SubCategoryID, a.Name, a.District, a.Amphoe, a.Province,
		a.Village, a.Type, a.Zipcode, a.DistrictCode, a.AmphoeCode, a.ProvinceCode,
		a.CoordinatorName, a.Phone, a.Description, a.Summary, a.Results, a.StartYear,
		a.VideoLink, a.UpdatedAt,
		a.ID, a.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		record.ID, record.CategoryID, record.SubCategoryID, record.Name, record.District,
		record.Amphoe, record.Province, record.Village, record.Type, record.Zipcode,
		record.DistrictCode, record.AmphoeCode, record.ProvinceCode, record.CoordinatorName,
		record.Phone, record.Description, record.Summary, record.Results, record.StartYear,
		record.VideoLink,
	).Scan(&record.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound("Creative activity")
	}

	return dberr.Wrap(err, "update_creative_activity")
}

// AddImage links a stored image file to an activity.
func (repository *postgresRepository) AddImage(context context.Context, recordID string, image media.Image) error {
	i := schema.ContentImage
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
		i.Table, i.ID, i.URL, i.CreativeActivityID,
	)

	_, err := repository.pool.Exec(context, query, image.ID, image.URL, recordID)
	return dberr.Wrap(err, "add_creative_activity_image")
}

// SetReportFileURL records the stored activity-report document location.
func (repository *postgresRepository) SetReportFileURL(context context.Context, recordID, url string) error {
	a := schema.ContentCreativeActivity
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
		a.Table, a.ReportFileURL, a.ID,
	)

	_, err := repository.pool.Exec(context, query, recordID, url)
	return dberr.Wrap(err, "set_creative_activity_report_file")
}

// scanActivity hydrates one activity row shared by List and FindByID.
func scanActivity(row pgx.Row) (*CreativeActivity, error) {
	record := &CreativeActivity{}
	category := &Category{}
	subCategory := &SubCategory{}
	var imagesJSON []byte

	err := row.Scan(
		&record.ID, &record.CategoryID, &record.SubCategoryID, &record.Name,
		&record.District, &record.Amphoe, &record.Province, &record.Village,
		&record.Type, &record.Zipcode, &record.DistrictCode, &record.AmphoeCode,
		&record.ProvinceCode, &record.CoordinatorName, &record.Phone,
		&record.Description, &record.Summary, &record.Results, &record.StartYear,
		&record.VideoLink, &record.ReportFileURL, &record.ViewCount,
		&record.CreatedAt, &record.UpdatedAt,
		&category.ID, &category.Name, &subCategory.ID, &subCategory.Name,
		&imagesJSON,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(imagesJSON, &record.Images); err != nil {
		return nil, fmt.Errorf("postgres: failed to unmarshal activity images: %w", err)
	}
	record.Category = category
	record.SubCategory = subCategory

	return record, nil
}
