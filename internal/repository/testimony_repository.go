package repository

import (
	"context"

	"marsad/backend/internal/model"
)

const testimonyOwnerType = "testimony"

type TestimonyListFilter struct {
	Limit  int
	Offset int
}

type TestimonyRepository interface {
	List(ctx context.Context, filter TestimonyListFilter) ([]model.Testimony, error)
	ListLatest(ctx context.Context, limit int) ([]model.Testimony, error)
	GetBySlug(ctx context.Context, slug string) (model.Testimony, error)
	Count(ctx context.Context) (int, error)
}

type testimonyRepository struct {
	db dbtx
}

func NewTestimonyRepository(db dbtx) TestimonyRepository {
	return &testimonyRepository{db: db}
}

const testimonyColumns = `id, slug, title_key, content_key, witness_name_key, location_key, date, is_active, is_featured, sort_order, created_at, updated_at`

func (r *testimonyRepository) List(ctx context.Context, filter TestimonyListFilter) ([]model.Testimony, error) {
	query := `SELECT ` + testimonyColumns + `
		 FROM testimonies
		 WHERE is_active = 1
		 ORDER BY is_featured DESC, sort_order ASC, date DESC, id ASC`

	var args []any
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, filter.Offset)
	}

	return r.queryTestimonies(ctx, query, args...)
}

func (r *testimonyRepository) ListLatest(ctx context.Context, limit int) ([]model.Testimony, error) {
	query := `SELECT ` + testimonyColumns + `
		 FROM testimonies
		 WHERE is_active = 1
		 ORDER BY date DESC, id DESC`

	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	return r.queryTestimonies(ctx, query, args...)
}

func (r *testimonyRepository) GetBySlug(ctx context.Context, slug string) (model.Testimony, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT `+testimonyColumns+` FROM testimonies WHERE is_active = 1 AND slug = ?`,
		slug,
	)

	t, err := scanTestimonyRow(row.Scan)
	if err != nil {
		return model.Testimony{}, err
	}

	media, err := loadMediaForOwners(ctx, r.db, testimonyOwnerType, []int64{t.ID})
	if err != nil {
		return model.Testimony{}, err
	}
	t.Media = media[t.ID]

	return t, nil
}

func (r *testimonyRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM testimonies WHERE is_active = 1`).Scan(&count)
	return count, err
}

func (r *testimonyRepository) queryTestimonies(ctx context.Context, query string, args ...any) ([]model.Testimony, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var testimonies []model.Testimony
	for rows.Next() {
		t, err := scanTestimonyRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		testimonies = append(testimonies, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	ids := make([]int64, len(testimonies))
	for i, t := range testimonies {
		ids[i] = t.ID
	}
	media, err := loadMediaForOwners(ctx, r.db, testimonyOwnerType, ids)
	if err != nil {
		return nil, err
	}
	for i := range testimonies {
		testimonies[i].Media = media[testimonies[i].ID]
	}

	return testimonies, nil
}

func scanTestimonyRow(scan func(dest ...any) error) (model.Testimony, error) {
	var t model.Testimony
	var date *string
	var isActive, isFeatured int
	var createdAt, updatedAt string

	err := scan(&t.ID, &t.Slug, &t.TitleKey, &t.ContentKey, &t.WitnessNameKey, &t.LocationKey, &date, &isActive, &isFeatured, &t.SortOrder, &createdAt, &updatedAt)
	if err != nil {
		return model.Testimony{}, err
	}

	t.IsActive = isActive == 1
	t.IsFeatured = isFeatured == 1
	if date != nil {
		t.Date = parseTimePtr(*date)
	}
	t.CreatedAt, _ = parseTime(createdAt)
	t.UpdatedAt, _ = parseTime(updatedAt)

	return t, nil
}
