// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

package policy

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

// filterColumns maps the shared listing dimensions onto content.publicpolicy.
// The year filter resolves against the signing date as a half-open range.
var filterColumns = listing.Columns{
	Region:       "p.type",
	Province:     "p.province",
	SigningDate:  "p.signingdate",
	Level:        "p.level",
	HealthRegion: "p.healthregion",
}

// postgresRepository implements [Repository] using pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed public-policy store.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

const selectClause = `
	SELECT
		p.id, p.name, p.signingdate, p.level, p.healthregion, p.district, p.amphoe,
		p.province, p.village, p.type, p.zipcode, p.districtcode, p.amphoecode,
		p.provincecode, p.content, p.summary, p.results, p.videolink, p.policyfileurl,
		p.viewcount, p.createdat, p.updatedat,
`

// List returns a filtered slice of policies ordered by most recently signed,
// each with at most one preview image.
func (repository *postgresRepository) List(context context.Context, filter listing.Filter, limit, offset int) ([]*PublicPolicy, error) {
	query := selectClause + `
		COALESCE((
			SELECT json_agg(json_build_object('id', i.id, 'url', i.url))
			FROM (
				SELECT id, url FROM content.image
				WHERE publicpolicyid = p.id
				ORDER BY createdat ASC
				LIMIT 1
			) i
		), '[]') AS images
		FROM content.publicpolicy p
		WHERE 1 = 1
	`

	clause, args, argIndex := filter.Where(filterColumns, 1)
	query += clause
	query += fmt.Sprintf(" ORDER BY p.signingdate DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_public_policies")
	}
	defer rows.Close()

	var records []*PublicPolicy
	for rows.Next() {
		record, err := scanPolicy(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_public_policy")
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_public_policies")
	}

	return records, nil
}

// Count returns the number of policies matching the filter.
func (repository *postgresRepository) Count(context context.Context, filter listing.Filter) (int, error) {
	query := "SELECT count(*) FROM content.publicpolicy p WHERE 1 = 1"

	clause, args, _ := filter.Where(filterColumns, 1)
	query += clause

	var total int
	if err := repository.pool.QueryRow(context, query, args...).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_public_policies")
	}

	return total, nil
}

// FindByID returns one policy with every image.
func (repository *postgresRepository) FindByID(context context.Context, id string) (*PublicPolicy, error) {
	query := selectClause + `
		COALESCE((
			SELECT json_agg(json_build_object('id', i.id, 'url', i.url) ORDER BY i.createdat ASC)
			FROM content.image i
			WHERE i.publicpolicyid = p.id
		), '[]') AS images
		FROM content.publicpolicy p
		WHERE p.id = $1
	`

	record, err := scanPolicy(repository.pool.QueryRow(context, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Public policy")
		}
		return nil, dberr.Wrap(err, "get_public_policy")
	}

	return record, nil
}

// IncrementViewCount adds one view to a policy.
func (repository *postgresRepository) IncrementViewCount(context context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = %s + 1 WHERE %s = $1`,
		schema.ContentPublicPolicy.Table, schema.ContentPublicPolicy.ViewCount,
		schema.ContentPublicPolicy.ViewCount, schema.ContentPublicPolicy.ID,
	)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "increment_public_policy_views")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Public policy")
	}

	return nil
}

// Create inserts a new policy and hydrates the generated timestamps. The
// content clauses are stored as a JSONB array.
func (repository *postgresRepository) Create(context context.Context, record *PublicPolicy) error {
	p := schema.ContentPublicPolicy
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING %s, %s, %s
	`,
		p.Table, p.ID, p.Name, p.SigningDate, p.Level, p.HealthRegion, p.District,
		p.Amphoe, p.Province, p.Village, p.Type, p.Zipcode, p.DistrictCode,
		p.AmphoeCode, p.ProvinceCode, p.Content, p.Summary, p.Results, p.VideoLink,
		p.ViewCount, p.CreatedAt, p.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		record.ID, record.Name, record.SigningDate, record.Level, record.HealthRegion,
		record.District, record.Amphoe, record.Province, record.Village, record.Type,
		record.Zipcode, record.DistrictCode, record.AmphoeCode, record.ProvinceCode,
		record.Content, record.Summary, record.Results, record.VideoLink,
	).Scan(&record.ViewCount, &record.CreatedAt, &record.UpdatedAt)

	return dberr.Wrap(err, "create_public_policy")
}

// Update replaces every mutable attribute of a policy.
func (repository *postgresRepository) Update(context context.Context, record *PublicPolicy) error {
	p := schema.ContentPublicPolicy
	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9,
			%s = $10, %s = $11, %s = $12, %s = $13, %s = $14, %s = $15, %s = $16,
			%s = $17, %s = $18, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		p.Table, p.Name, p.SigningDate, p.Level, p.HealthRegion, p.District, p.Amphoe,
		p.Province, p.Village, p.Type, p.Zipcode, p.DistrictCode, p.AmphoeCode,
		p.ProvinceCode, p.Content, p.Summary, p.Results, p.VideoLink, p.UpdatedAt,
		p.ID, p.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		record.ID, record.Name, record.SigningDate, record.Level, record.HealthRegion,
		record.District, record.Amphoe, record.Province, record.Village, record.Type,
		record.Zipcode, record.DistrictCode, record.AmphoeCode, record.ProvinceCode,
		record.Content, record.Summary, record.Results, record.VideoLink,
	).Scan(&record.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound("Public policy")
	}

	return dberr.Wrap(err, "update_public_policy")
}

// AddImage links a stored image file to a policy.
func (repository *postgresRepository) AddImage(context context.Context, recordID string, image media.Image) error {
	i := schema.ContentImage
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
		i.Table, i.ID, i.URL, i.PublicPolicyID,
	)

	_, err := repository.pool.Exec(context, query, image.ID, image.URL, recordID)
	return dberr.Wrap(err, "add_public_policy_image")
}

// SetPolicyFileURL records the stored signed-document location.
func (repository *postgresRepository) SetPolicyFileURL(context context.Context, recordID, url string) error {
	p := schema.ContentPublicPolicy
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
		p.Table, p.PolicyFileURL, p.ID,
	)

	_, err := repository.pool.Exec(context, query, recordID, url)
	return dberr.Wrap(err, "set_public_policy_file")
}

// scanPolicy hydrates one policy row shared by List and FindByID. The JSONB
// content column scans straight into the clause slice.
func scanPolicy(row pgx.Row) (*PublicPolicy, error) {
	record := &PublicPolicy{}
	var imagesJSON []byte

	err := row.Scan(
		&record.ID, &record.Name, &record.SigningDate, &record.Level,
		&record.HealthRegion, &record.District, &record.Amphoe, &record.Province,
		&record.Village, &record.Type, &record.Zipcode, &record.DistrictCode,
		&record.AmphoeCode, &record.ProvinceCode, &record.Content, &record.Summary,
		&record.Results, &record.VideoLink, &record.PolicyFileURL, &record.ViewCount,
		&record.CreatedAt, &record.UpdatedAt,
		&imagesJSON,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(imagesJSON, &record.Images); err != nil {
		return nil, fmt.Errorf("postgres: failed to unmarshal policy images: %w", err)
	}
	if record.Content == nil {
		record.Content = []string{}
	}

	return record, nil
}
