package repository

import (
	"context"

	"marsad/backend/internal/model"
)

// loadMediaForOwners fetches active media for a set of owner rows in one
// query, keyed by owner ID. Content repositories use it to eager-load
// media alongside their entity queries.
func loadMediaForOwners(ctx context.Context, db dbtx, ownerType string, ownerIDs []int64) (map[int64][]model.Media, error) {
	if len(ownerIDs) == 0 {
		return map[int64][]model.Media{}, nil
	}

	query := `SELECT id, owner_type, owner_id, provider, reference, alt_key, sort_order, is_active, created_at
		 FROM media
		 WHERE is_active = 1 AND owner_type = ? AND owner_id IN (` + placeholders(len(ownerIDs)) + `)
		 ORDER BY sort_order ASC, id ASC`

	args := make([]any, 0, len(ownerIDs)+1)
	args = append(args, ownerType)
	for _, id := range ownerIDs {
		args = append(args, id)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[int64][]model.Media)
	for rows.Next() {
		var m model.Media
		var isActive int
		var createdAt string

		if err := rows.Scan(&m.ID, &m.OwnerType, &m.OwnerID, &m.Provider, &m.Reference, &m.AltKey, &m.SortOrder, &isActive, &createdAt); err != nil {
			return nil, err
		}

		m.IsActive = isActive == 1
		m.CreatedAt, _ = parseTime(createdAt)
		result[m.OwnerID] = append(result[m.OwnerID], m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
