package repository

import (
	"context"

	"marsad/backend/internal/model"
)

type HomeSectionRepository interface {
	ListActive(ctx context.Context) ([]model.HomeSection, error)
}

type homeSectionRepository struct {
	db dbtx
}

func NewHomeSectionRepository(db dbtx) HomeSectionRepository {
	return &homeSectionRepository{db: db}
}

func (r *homeSectionRepository) ListActive(ctx context.Context) ([]model.HomeSection, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, section_type, title_key, subtitle_key, button_text_key, button_url, sort_order, is_active, created_at, updated_at
		 FROM home_sections
		 WHERE is_active = 1
		 ORDER BY sort_order ASC, id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []model.HomeSection
	for rows.Next() {
		var s model.HomeSection
		var isActive int
		var createdAt, updatedAt string

		if err := rows.Scan(&s.ID, &s.SectionType, &s.TitleKey, &s.SubtitleKey, &s.ButtonTextKey, &s.ButtonURL, &s.SortOrder, &isActive, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		s.IsActive = isActive == 1
		s.CreatedAt, _ = parseTime(createdAt)
		s.UpdatedAt, _ = parseTime(updatedAt)
		sections = append(sections, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sections, nil
}
