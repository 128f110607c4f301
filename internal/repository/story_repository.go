package repository

import (
	"context"

	"marsad/backend/internal/model"
)

const storyOwnerType = "story"

type StoryRepository interface {
	ListFeatured(ctx context.Context, limit int) ([]model.Story, error)
	Count(ctx context.Context) (int, error)
}

type storyRepository struct {
	db dbtx
}

func NewStoryRepository(db dbtx) StoryRepository {
	return &storyRepository{db: db}
}

func (r *storyRepository) ListFeatured(ctx context.Context, limit int) ([]model.Story, error) {
	query := `SELECT id, slug, title_key, excerpt_key, body_key, date, is_active, is_featured, sort_order, created_at, updated_at
		 FROM stories
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

	var stories []model.Story
	for rows.Next() {
		var s model.Story
		var date *string
		var isActive, isFeatured int
		var createdAt, updatedAt string

		if err := rows.Scan(&s.ID, &s.Slug, &s.TitleKey, &s.ExcerptKey, &s.BodyKey, &date, &isActive, &isFeatured, &s.SortOrder, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		s.IsActive = isActive == 1
		s.IsFeatured = isFeatured == 1
		if date != nil {
			s.Date = parseTimePtr(*date)
		}
		s.CreatedAt, _ = parseTime(createdAt)
		s.UpdatedAt, _ = parseTime(updatedAt)
		stories = append(stories, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	ids := make([]int64, len(stories))
	for i, s := range stories {
		ids[i] = s.ID
	}
	media, err := loadMediaForOwners(ctx, r.db, storyOwnerType, ids)
	if err != nil {
		return nil, err
	}
	for i := range stories {
		stories[i].Media = media[stories[i].ID]
	}

	return stories, nil
}

func (r *storyRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM stories WHERE is_active = 1`).Scan(&count)
	return count, err
}
