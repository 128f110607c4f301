package model

import "time"

type Story struct {
	ID         int64
	Slug       string
	TitleKey   string
	ExcerptKey *string
	BodyKey    *string
	Date       *time.Time
	IsActive   bool
	IsFeatured bool
	SortOrder  int
	Media      []Media
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
