package model

import "time"

type Testimony struct {
	ID             int64
	Slug           string
	TitleKey       string
	ContentKey     string
	WitnessNameKey *string
	LocationKey    *string
	Date           *time.Time
	IsActive       bool
	IsFeatured     bool
	SortOrder      int
	Media          []Media
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
