package model

import "time"

type Case struct {
	ID             int64
	Slug           string
	TitleKey       string
	DescriptionKey *string
	Date           *time.Time
	IsActive       bool
	IsFeatured     bool
	SortOrder      int
	Media          []Media
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
