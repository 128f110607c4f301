package model

import "time"

type TimelineEvent struct {
	ID             int64
	TitleKey       string
	DescriptionKey *string
	Date           time.Time
	SortOrder      int
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
