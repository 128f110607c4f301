package repository

import (
	"context"

	"marsad/backend/internal/model"
)

type TranslationRepository interface {
	// ResolveBatch returns all active rows matching the given keys and
	// languages within one group bucket, in a single query. A nil group
	// matches only ungrouped rows; a named group matches exactly.
	ResolveBatch(ctx context.Context, keys []string, languages []string, group *string) ([]model.Translation, error)
}

type translationRepository struct {
	db dbtx
}

func NewTranslationRepository(db dbtx) TranslationRepository {
	return &translationRepository{db: db}
}

func (r *translationRepository) ResolveBatch(ctx context.Context, keys []string, languages []string, group *string) ([]model.Translation, error) {
	if len(keys) == 0 || len(languages) == 0 {
		return nil, nil
	}

	query := `SELECT id, language, group_name, key, value, is_active, created_at, updated_at
		 FROM translations
		 WHERE is_active = 1
		   AND language IN (` + placeholders(len(languages)) + `)
		   AND key IN (` + placeholders(len(keys)) + `)`

	args := make([]any, 0, len(languages)+len(keys)+1)
	for _, lang := range languages {
		args = append(args, lang)
	}
	for _, key := range keys {
		args = append(args, key)
	}

	if group == nil {
		query += " AND group_name IS NULL"
	} else {
		query += " AND group_name = ?"
		args = append(args, *group)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var translations []model.Translation
	for rows.Next() {
		var t model.Translation
		var isActive int
		var createdAt, updatedAt string

		if err := rows.Scan(&t.ID, &t.Language, &t.Group, &t.Key, &t.Value, &isActive, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		t.IsActive = isActive == 1
		t.CreatedAt, _ = parseTime(createdAt)
		t.UpdatedAt, _ = parseTime(updatedAt)
		translations = append(translations, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return translations, nil
}
