package repository

import (
	"context"

	"marsad/backend/internal/model"
)

const caseOwnerType = "case"

type CaseRepository interface {
	ListFeatured(ctx context.Context, limit int) ([]model.Case, error)
	Count(ctx context.Context) (int, error)
}

type caseRepository struct {
	db dbtx
}

func NewCaseRepository(db dbtx) CaseRepository {
	return &caseRepository{db: db}
}

func (r *caseRepository) ListFeatured(ctx context.Context, limit int) ([]model.Case, error) {
	query := `SELECT id, slug, title_key, description_key, date, is_active, is_featured, sort_order, created_at, updated_at
		 FROM cases
		 WHERE is_active = 1 AND is_featured = 1
		 ORDER BY sort_order ASC, id ASC`

	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cases []model.Case
	for rows.Next() {
		var c model.Case
		var date *string
		var isActive, isFeatured int
		var createdAt, updatedAt string

		if err := rows.Scan(&c.ID, &c.Slug, &c.TitleKey, &c.DescriptionKey, &date, &isActive, &isFeatured, &c.SortOrder, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		c.IsActive = isActive == 1
		c.IsFeatured = isFeatured == 1
		if date != nil {
			c.Date = parseTimePtr(*date)
		}
		c.CreatedAt, _ = parseTime(createdAt)
		c.UpdatedAt, _ = parseTime(updatedAt)
		cases = append(cases, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	ids := make([]int64, len(cases))
	for i, c := range cases {
		ids[i] = c.ID
	}
	media, err := loadMediaForOwners(ctx, r.db, caseOwnerType, ids)
	if err != nil {
		return nil, err
	}
	for i := range cases {
		cases[i].Media = media[cases[i].ID]
	}

	return cases, nil
}

func (r *caseRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cases WHERE is_active = 1`).Scan(&count)
	return count, err
}
