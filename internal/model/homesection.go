package model

import "time"

// HomeSection is a curated single-instance section on the home page.
// SectionType tags the content-shaping rule; SortOrder positions the
// section among generated groups.
type HomeSection struct {
	ID            int64
	SectionType   string
	TitleKey      *string
	SubtitleKey   *string
	ButtonTextKey *string
	ButtonURL     *string
	SortOrder     int
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
