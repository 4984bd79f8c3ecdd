// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

package tradition

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

// filterColumns maps the shared listing dimensions onto content.tradition.
// The region filter targets the coarse geographic 'type' column.
var filterColumns = listing.Columns{
	CategoryID: "t.categoryid",
	Region:     "t.type",
	Province:   "t.province",
	StartYear:  "t.startyear",
}

// postgresRepository implements [Repository] using pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed tradition store.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

/*
List returns a filtered slice of traditions ordered by newest first.

Each row carries its category and at most one preview image, aggregated as
JSON in the same round-trip. The total count is served by [Count] so both
legs can run concurrently.
*/
func (repository *postgresRepository) List(context context.Context, filter listing.Filter, limit, offset int) ([]*Tradition, error) {
	query := `
		SELECT
			t.id, t.categoryid, t.name, t.district, t.amphoe, t.province, t.village,
			t.type, t.zipcode, t.districtcode, t.amphoecode, t.provincecode,
			t.coordinatorname, t.phone, t.history, t.alcoholfreeapproach, t.results,
			t.startyear, t.videolink, t.policyfileurl, t.viewcount, t.createdat, t.updatedat,
			c.id, c.name,
			COALESCE((
				SELECT json_agg(json_build_object('id', i.id, 'url', i.url))
				FROM (
					SELECT id, url FROM content.image
					WHERE traditionid = t.id
					ORDER BY createdat ASC
					LIMIT 1
				) i
			), '[]') AS images
		FROM content.tradition t
		JOIN ref.traditioncategory c ON c.id = t.categoryid
		WHERE 1 = 1
	`

	clause, args, argIndex := filter.Where(filterColumns, 1)
	query += clause
	query += fmt.Sprintf(" ORDER BY t.createdat DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_traditions")
	}
	defer rows.Close()

	var records []*Tradition
	for rows.Next() {
		record, err := scanTradition(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_tradition")
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_traditions")
	}

	return records, nil
}

// Count returns the number of traditions matching the filter.
func (repository *postgresRepository) Count(context context.Context, filter listing.Filter) (int, error) {
	query := "SELECT count(*) FROM content.tradition t WHERE 1 = 1"

	clause, args, _ := filter.Where(filterColumns, 1)
	query += clause

	var total int
	if err := repository.pool.QueryRow(context, query, args...).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_traditions")
	}

	return total, nil
}

// FindByID returns one tradition with its category and every image, ordered
// by upload time.
func (repository *postgresRepository) FindByID(context context.Context, id string) (*Tradition, error) {
	query := `
		SELECT
			t.id, t.categoryid, t.name, t.district, t.amphoe, t.province, t.village,
			t.type, t.zipcode, t.districtcode, t.amphoecode, t.provincecode,
			t.coordinatorname, t.phone, t.history, t.alcoholfreeapproach, t.results,
			t.startyear, t.videolink, t.policyfileurl, t.viewcount, t.createdat, t.updatedat,
			c.id, c.name,
			COALESCE((
				SELECT json_agg(json_build_object('id', i.id, 'url', i.url) ORDER BY i.createdat ASC)
				FROM content.image i
				WHERE i.traditionid = t.id
			), '[]') AS images
		FROM content.tradition t
		JOIN ref.traditioncategory c ON c.id = t.categoryid
		WHERE t.id = $1
	`

	record, err := scanTradition(repository.pool.QueryRow(context, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Tradition")
		}
		return nil, dberr.Wrap(err, "get_tradition")
	}

	return record, nil
}

// IncrementViewCount adds one view to a tradition.
func (repository *postgresRepository) IncrementViewCount(context context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = %s + 1 WHERE %s = $1`,
		schema.ContentTradition.Table, schema.ContentTradition.ViewCount,
		schema.ContentTradition.ViewCount, schema.ContentTradition.ID,
	)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "increment_tradition_views")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Tradition")
	}

	return nil
}

// Create inserts a new tradition and hydrates the generated timestamps.
func (repository *postgresRepository) Create(context context.Context, record *Tradition) error {
	t := schema.ContentTradition
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING %s, %s, %s
	`,
		t.Table, t.ID, t.CategoryID, t.Name, t.District, t.Amphoe, t.Province, t.Village,
		t.Type, t.Zipcode, t.DistrictCode, t.AmphoeCode, t.ProvinceCode, t.CoordinatorName,
		t.Phone, t.History, t.AlcoholFreeApproach, t.Results, t.StartYear, t.VideoLink,
		t.ViewCount, t.CreatedAt, t.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		record.ID, record.CategoryID, record.Name, record.District, record.Amphoe,
		record.Province, record.Village, record.Type, record.Zipcode, record.DistrictCode,
		record.AmphoeCode, record.ProvinceCode, record.CoordinatorName, record.Phone,
		record.History, record.AlcoholFreeApproach, record.Results, record.StartYear,
		record.VideoLink,
	).Scan(&record.ViewCount, &record.CreatedAt, &record.UpdatedAt)

	return dberr.Wrap(err, "create_tradition")
}

// Update replaces every mutable attribute of a tradition.
func (repository *postgresRepository) Update(context context.Context, record *Tradition) error {
	t := schema.ContentTradition
	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9,
			%s = $10, %s = $11, %s = $12, %s = $13, %s = $14, %s = $15, %s = $16,
			%s = $17, %s = $18, %s = $19, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table, t.CategoryID, t.Name, t.District, t.Amphoe, t.Province, t.Village,
		t.Type, t.Zipcode, t.DistrictCode, t.AmphoeCode, t.ProvinceCode,
		t.CoordinatorName, t.Phone, t.History, t.AlcoholFreeApproach, t.Results,
		t.StartYear, t.VideoLink, t.UpdatedAt,
		t.ID, t.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		record.ID, record.CategoryID, record.Name, record.District, record.Amphoe,
		record.Province, record.Village, record.Type, record.Zipcode, record.DistrictCode,
		record.AmphoeCode, record.ProvinceCode, record.CoordinatorName, record.Phone,
		record.History, record.AlcoholFreeApproach, record.Results, record.StartYear,
		record.VideoLink,
	).Scan(&record.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound("Tradition")
	}

	return dberr.Wrap(err, "update_tradition")
}

// AddImage links a stored image file to a tradition.
func (repository *postgresRepository) AddImage(context context.Context, recordID string, image media.Image) error {
	i := schema.ContentImage
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
		i.Table, i.ID, i.URL, i.TraditionID,
	)

	_, err := repository.pool.Exec(context, query, image.ID, image.URL, recordID)
	return dberr.Wrap(err, "add_tradition_image")
}

// SetPolicyFileURL records the stored policy document location.
func (repository *postgresRepository) SetPolicyFileURL(context context.Context, recordID, url string) error {
	t := schema.ContentTradition
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
		t.Table, t.PolicyFileURL, t.ID,
	)

	_, err := repository.pool.Exec(context, query, recordID, url)
	return dberr.Wrap(err, "set_tradition_policy_file")
}

// scanTradition hydrates one tradition row shared by List and FindByID.
func scanTradition(row pgx.Row) (*Tradition, error) {
	record := &Tradition{}
	category := &Category{}
	var imagesJSON []byte

	err := row.Scan(
		&record.ID, &record.CategoryID, &record.Name, &record.District, &record.Amphoe,
		&record.Province, &record.Village, &record.Type, &record.Zipcode,
		&record.DistrictCode, &record.AmphoeCode, &record.ProvinceCode,
		&record.CoordinatorName, &record.Phone, &record.History,
		&record.AlcoholFreeApproach, &record.Results, &record.StartYear,
		&record.VideoLink, &record.PolicyFileURL, &record.ViewCount,
		&record.CreatedAt, &record.UpdatedAt,
		&category.ID, &category.Name,
		&imagesJSON,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(imagesJSON, &record.Images); err != nil {
		return nil, fmt.Errorf("postgres: failed to unmarshal tradition images: %w", err)
	}
	record.Category = category

	return record, nil
}
