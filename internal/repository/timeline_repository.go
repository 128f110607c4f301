package repository

import (
	"context"

	"marsad/backend/internal/model"
)

type TimelineRepository interface {
	ListActive(ctx context.Context) ([]model.TimelineEvent, error)
	Count(ctx context.Context) (int, error)
}

type timelineRepository struct {
	db dbtx
}

func NewTimelineRepository(db dbtx) TimelineRepository {
	return &timelineRepository{db: db}
}

func (r *timelineRepository) ListActive(ctx context.Context) ([]model.TimelineEvent, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, title_key, description_key, date, sort_order, is_active, created_at, updated_at
		 FROM timeline_events
		 WHERE is_active = 1
		 ORDER BY sort_order ASC, date ASC, id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []model.TimelineEvent
	for rows.Next() {
		var e model.TimelineEvent
		var date string
		var isActive int
		var createdAt, updatedAt string

		if err := rows.Scan(&e.ID, &e.TitleKey, &e.DescriptionKey, &date, &e.SortOrder, &isActive, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		e.IsActive = isActive == 1
		e.Date, _ = parseTime(date)
		e.CreatedAt, _ = parseTime(createdAt)
		e.UpdatedAt, _ = parseTime(updatedAt)
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *timelineRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM timeline_events WHERE is_active = 1`).Scan(&count)
	return count, err
}
