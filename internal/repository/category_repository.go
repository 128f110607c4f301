package repository

import (
	"context"

	"marsad/backend/internal/model"
)

type CategoryRepository interface {
	ListAll(ctx context.Context) ([]model.Category, error)
}

type categoryRepository struct {
	db dbtx
}

func NewCategoryRepository(db dbtx) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) ListAll(ctx context.Context) ([]model.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, slug, name_key FROM categories ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Slug, &c.NameKey); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
